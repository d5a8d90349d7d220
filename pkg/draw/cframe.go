package draw

import (
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// cframeAxisLength is the world length of each drawn axis shaft.
const cframeAxisLength = 2

// Axis colors are fixed regardless of the current default color.
var (
	axisColorX = scene.Color{R: 1, G: 0, B: 0}
	axisColorY = scene.Color{R: 0, G: 1, B: 0}
	axisColorZ = scene.Color{R: 0, G: 0, B: 1}
)

// CFrame draws a transform: a point marker at its position plus three shafts
// along its local X/Y/Z axes colored red, green and blue. The shapes are
// grouped under one returned container.
func (c *Context) CFrame(tf math.Transform) *scene.Group {
	group := scene.NewGroup("CFrame")

	c.Point(tf.Position, &PointOptions{Parent: group, Diameter: 0.5})

	axes := []struct {
		dir   math.Vec3
		color scene.Color
	}{
		{tf.Right, axisColorX},
		{tf.Up, axisColorY},
		{tf.Forward, axisColorZ},
	}
	for _, a := range axes {
		c.Ray(math.Ray{
			Origin:    tf.Position,
			Direction: a.dir.Scale(cframeAxisLength),
		}, &RayOptions{
			Color:    &a.color,
			Parent:   group,
			Diameter: 0.1,
		})
	}

	group.SetParent(c.DefaultParent())
	return group
}
