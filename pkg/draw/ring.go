package draw

import (
	gomath "math"

	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// ringStep is the angular sampling step of Ring. With angles spanning
// [0, 2pi] inclusive this yields 17 sample points; the wrap segment closing
// sample 17 back to sample 1 is zero-length by construction.
const ringStep = gomath.Pi / 8

// RingOptions overrides the defaults of Ring. A nil *RingOptions means all
// defaults.
type RingOptions struct {
	Color    *scene.Color
	Parent   scene.Instance
	Diameter float32 // segment shaft diameter; 0 means DefaultRayDiameter
}

// RingSamples returns the ring's sample points: the circle of the given
// radius centered at center in the plane perpendicular to normal, sampled
// every pi/8 from 0 to 2pi inclusive. A zero normal samples in the world XY
// plane.
func RingSamples(center, normal math.Vec3, radius float32) []math.Vec3 {
	basis := math.LookAtTransform(center, center.Add(normal))

	var points []math.Vec3
	for angle := float64(0); angle <= 2*gomath.Pi+1e-6; angle += ringStep {
		offset := basis.Right.Scale(radius * float32(gomath.Cos(angle))).
			Add(basis.Up.Scale(radius * float32(gomath.Sin(angle))))
		points = append(points, center.Add(offset))
	}
	return points
}

// Ring draws a circle of the given radius around center, in the plane
// perpendicular to normal, as ray shafts connecting consecutive samples
// (wrapping the last back to the first) grouped under one container.
func (c *Context) Ring(center, normal math.Vec3, radius float32, opts *RingOptions) *scene.Group {
	if opts == nil {
		opts = &RingOptions{}
	}

	group := scene.NewGroup("Ring")
	points := RingSamples(center, normal, radius)
	for i, p := range points {
		next := points[(i+1)%len(points)]
		c.Ray(math.Ray{Origin: p, Direction: next.Sub(p)}, &RayOptions{
			Color:    opts.Color,
			Parent:   group,
			Diameter: opts.Diameter,
		})
	}

	parent := opts.Parent
	if parent == nil {
		parent = c.DefaultParent()
	}
	group.SetParent(parent)
	return group
}
