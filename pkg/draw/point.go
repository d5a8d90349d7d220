package draw

import (
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// DefaultPointDiameter is the marker diameter used when none is given.
const DefaultPointDiameter = 1

// PointOptions overrides the defaults of Point, PointAt, Sphere and the
// labelled-point calls. A nil *PointOptions means all defaults.
type PointOptions struct {
	Color    *scene.Color
	Parent   scene.Instance
	Diameter float32 // 0 means DefaultPointDiameter
}

// Point draws a sphere marker at the given position.
func (c *Context) Point(position math.Vec3, opts *PointOptions) *scene.Part {
	if opts == nil {
		opts = &PointOptions{}
	}
	col, parent := c.pick(opts.Color, opts.Parent)
	diameter := opts.Diameter
	if diameter == 0 {
		diameter = DefaultPointDiameter
	}

	marker := scene.NewPart("Point")
	marker.Shape = scene.Ball
	marker.Material = scene.ForceField
	marker.Transform = math.TransformAt(position)
	marker.Size = math.Vec3{X: diameter, Y: diameter, Z: diameter}
	marker.Color = col
	marker.Transparency = 0.5
	marker.CanCollide = false
	marker.CastShadow = false
	marker.Locked = true
	marker.SetParent(parent)
	return marker
}

// PointAt draws a point marker at the transform's position. The rotation
// component is ignored.
func (c *Context) PointAt(tf math.Transform, opts *PointOptions) *scene.Part {
	return c.Point(tf.Position, opts)
}

// Sphere draws a point marker with diameter 2*radius. A zero radius falls
// back to the default point diameter.
func (c *Context) Sphere(position math.Vec3, radius float32, opts *PointOptions) *scene.Part {
	o := PointOptions{Diameter: 2 * radius}
	if opts != nil {
		o.Color = opts.Color
		o.Parent = opts.Parent
	}
	return c.Point(position, &o)
}

// LabelledPoint draws a point marker with a text block attached in the same
// color, and returns the point.
func (c *Context) LabelledPoint(position math.Vec3, label string, opts *PointOptions) *scene.Part {
	marker := c.Point(position, opts)
	c.Text(OnPart(marker), label, &TextOptions{Color: &marker.Color})
	return marker
}

// LabeledPoint is LabelledPoint under its other spelling.
func (c *Context) LabeledPoint(position math.Vec3, label string, opts *PointOptions) *scene.Part {
	return c.LabelledPoint(position, label, opts)
}
