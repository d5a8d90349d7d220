package draw

import (
	"go.uber.org/zap"

	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// DefaultRayDiameter is the shaft and mesh diameter used when none is given.
const DefaultRayDiameter = 0.2

// RayOptions overrides the defaults of Ray and Vector. A nil *RayOptions
// means all defaults.
type RayOptions struct {
	Color        *scene.Color
	Parent       scene.Instance
	Diameter     float32 // shaft diameter; 0 means DefaultRayDiameter
	MeshDiameter float32 // rendered mesh diameter; 0 means DefaultRayDiameter
}

// RayHandle is the live handle to a drawn ray, usable for in-place updates.
type RayHandle struct {
	shaft *scene.Part
	mesh  *scene.Mesh
}

// Part returns the shaft part backing the handle.
func (h *RayHandle) Part() *scene.Part { return h.shaft }

// Ray draws a cylinder shaft along r: centered at the ray's midpoint, length
// equal to the direction's magnitude, forward axis along the direction. A
// zero-length direction yields a zero-length shaft with the identity
// orientation at the origin point.
func (c *Context) Ray(r math.Ray, opts *RayOptions) *RayHandle {
	if opts == nil {
		opts = &RayOptions{}
	}
	col, parent := c.pick(opts.Color, opts.Parent)
	diameter := opts.Diameter
	if diameter == 0 {
		diameter = DefaultRayDiameter
	}
	meshDiameter := opts.MeshDiameter
	if meshDiameter == 0 {
		meshDiameter = DefaultRayDiameter
	}

	shaft := scene.NewPart("Ray")
	shaft.Shape = scene.Cylinder
	shaft.Material = scene.Neon
	shaft.Color = col
	shaft.CanCollide = false
	shaft.CastShadow = false
	shaft.Locked = true

	mesh := scene.NewMesh("Mesh", scene.MeshCylinder)
	mesh.SetParent(shaft)

	h := &RayHandle{shaft: shaft, mesh: mesh}
	h.apply(r, diameter, meshDiameter)

	shaft.SetParent(parent)
	c.log.Debug("ray", zap.Float32("length", r.Length()))
	return h
}

// Vector draws a ray from a position and direction.
func (c *Context) Vector(position, direction math.Vec3, opts *RayOptions) *RayHandle {
	return c.Ray(math.Ray{Origin: position, Direction: direction}, opts)
}

// Update recomputes the shaft's transform and length for a new ray without
// rebuilding it. A nil color keeps the shaft's current color; the context
// default is not consulted.
func (h *RayHandle) Update(r math.Ray, color *scene.Color) {
	if color != nil {
		h.shaft.Color = *color
	}
	h.apply(r, h.shaft.Size.X, h.mesh.Scale.X*h.shaft.Size.X)
}

func (h *RayHandle) apply(r math.Ray, diameter, meshDiameter float32) {
	length := r.Length()
	h.shaft.Transform = math.LookAtTransform(r.Midpoint(), r.End())
	h.shaft.Size = math.Vec3{X: diameter, Y: diameter, Z: length}

	// Mesh scale is relative to the part size in the cross-section axes.
	ratio := float32(1)
	if diameter != 0 {
		ratio = meshDiameter / diameter
	}
	h.mesh.Scale = math.Vec3{X: ratio, Y: ratio, Z: 1}
}
