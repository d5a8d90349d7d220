package scene

import "github.com/Faultbox/gizmo/pkg/math"

// Shape selects the solid rendered for a Part.
type Shape int

const (
	Block Shape = iota
	Ball
	Cylinder
)

// Material selects the surface treatment of a Part.
type Material int

const (
	Plastic Material = iota
	SmoothPlastic
	Neon
	ForceField
)

// Part is a solid primitive in the scene graph. Cylinder parts extend along
// the transform's forward axis; Size.X/Size.Y are the cross-section and
// Size.Z the length.
type Part struct {
	Base

	Shape        Shape
	Transform    math.Transform
	Size         math.Vec3
	Color        Color
	Material     Material
	Transparency float32
	Reflectance  float32
	Anchored     bool
	CanCollide   bool
	CastShadow   bool
	Locked       bool
}

// NewPart returns an unparented Block part of unit size at the origin.
func NewPart(name string) *Part {
	p := &Part{
		Transform: math.TransformIdentity(),
		Size:      math.Vec3{X: 1, Y: 1, Z: 1},
		Color:     Color{R: 0.64, G: 0.64, B: 0.64},
		Anchored:  true,
	}
	p.init(p, name)
	return p
}

// Clone returns a deep copy of the part and its descendants.
func (p *Part) Clone() Instance {
	c := NewPart(p.name)
	c.Shape = p.Shape
	c.Transform = p.Transform
	c.Size = p.Size
	c.Color = p.Color
	c.Material = p.Material
	c.Transparency = p.Transparency
	c.Reflectance = p.Reflectance
	c.Anchored = p.Anchored
	c.CanCollide = p.CanCollide
	c.CastShadow = p.CastShadow
	c.Locked = p.Locked
	p.cloneMetaInto(c)
	return c
}

// MeshKind selects the visual mesh overriding a part's base shape.
type MeshKind int

const (
	MeshSphere MeshKind = iota
	MeshCylinder
	MeshBrick
)

// Mesh is a visual-only child that rescales its parent part's rendered
// geometry without changing the part's physical size.
type Mesh struct {
	Base

	Kind   MeshKind
	Scale  math.Vec3
	Offset math.Vec3
}

// NewMesh returns an unparented mesh with unit scale.
func NewMesh(name string, kind MeshKind) *Mesh {
	m := &Mesh{
		Kind:  kind,
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}
	m.init(m, name)
	return m
}

// Clone returns a deep copy of the mesh and its descendants.
func (m *Mesh) Clone() Instance {
	c := NewMesh(m.name, m.Kind)
	c.Scale = m.Scale
	c.Offset = m.Offset
	m.cloneMetaInto(c)
	return c
}
