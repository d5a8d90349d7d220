package draw

import (
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// Screen-space defaults.
const (
	// DefaultScreenPointDiameter is the marker diameter in pixels.
	DefaultScreenPointDiameter = 25
	// screenLineDots is the number of markers stamped along a screen line.
	screenLineDots = 26
	// screenLineDotDiameter is the pixel diameter of each stamped marker.
	screenLineDotDiameter = 3
)

// ScreenPointOptions overrides the defaults of ScreenPoint. A nil
// *ScreenPointOptions means all defaults.
type ScreenPointOptions struct {
	Color    *scene.Color
	Diameter float32 // pixels; 0 means DefaultScreenPointDiameter
}

// ScreenPoint draws a circular marker at a normalized screen-space position
// under the given parent, anchored at its own center.
func (c *Context) ScreenPoint(position math.Vec2, parent scene.Instance, opts *ScreenPointOptions) *scene.Dot {
	if opts == nil {
		opts = &ScreenPointOptions{}
	}
	col, _ := c.pick(opts.Color, nil)
	diameter := opts.Diameter
	if diameter == 0 {
		diameter = DefaultScreenPointDiameter
	}

	dot := scene.NewDot("ScreenPoint")
	dot.Position = position
	dot.DiameterPx = diameter
	dot.Color = col
	dot.SetParent(parent)
	return dot
}

// ScreenLineOptions overrides the defaults of ScreenPointLine. A nil
// *ScreenLineOptions means all defaults.
type ScreenLineOptions struct {
	Color  *scene.Color
	Parent scene.Instance
}

// ScreenPointLine draws a coarse screen-space line between two normalized
// positions: a container sized to the points' bounding box with 26 small
// markers stamped along the diagonal. Rising lines (offset components with
// the same sign) step corner to corner; falling, vertical and horizontal
// lines take the vertically mirrored diagonal, which is indistinguishable
// inside a zero-width or zero-height container. Coincident points yield an
// empty container.
func (c *Context) ScreenPointLine(a, b math.Vec2, opts *ScreenLineOptions) *scene.Canvas {
	if opts == nil {
		opts = &ScreenLineOptions{}
	}

	offset := b.Sub(a)
	canvas := scene.NewCanvas("ScreenPointLine")
	canvas.Position = math.Vec2{X: minf(a.X, b.X), Y: minf(a.Y, b.Y)}
	canvas.Size = offset.Abs()

	parent := opts.Parent
	if parent == nil {
		parent = c.DefaultParent()
	}
	canvas.SetParent(parent)

	if offset == (math.Vec2{}) {
		return canvas
	}

	rising := offset.X*offset.Y > 0
	for i := 0; i < screenLineDots; i++ {
		t := float32(i) / (screenLineDots - 1)
		pos := math.Vec2{X: t, Y: t}
		if !rising {
			pos.Y = 1 - t
		}
		c.ScreenPoint(pos, canvas, &ScreenPointOptions{
			Color:    opts.Color,
			Diameter: screenLineDotDiameter,
		})
	}
	return canvas
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
