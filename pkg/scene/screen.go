package scene

import "github.com/Faultbox/gizmo/pkg/math"

// Canvas is a screen-space container. Position and Size are normalized to
// the parent's extent; AnchorPoint is the fraction of the canvas aligned to
// Position (0,0 = top-left, 0.5,0.5 = centered).
type Canvas struct {
	Base

	Position    math.Vec2
	Size        math.Vec2
	AnchorPoint math.Vec2
	Visible     bool
}

// NewCanvas returns an unparented, visible, zero-sized canvas.
func NewCanvas(name string) *Canvas {
	c := &Canvas{Visible: true}
	c.init(c, name)
	return c
}

// Clone returns a deep copy of the canvas and its descendants.
func (c *Canvas) Clone() Instance {
	d := NewCanvas(c.name)
	d.Position = c.Position
	d.Size = c.Size
	d.AnchorPoint = c.AnchorPoint
	d.Visible = c.Visible
	c.cloneMetaInto(d)
	return d
}

// Dot is a screen-space circular marker. Position is normalized to the
// parent; the diameter is in pixels, anchored at the dot's center.
type Dot struct {
	Base

	Position     math.Vec2
	DiameterPx   float32
	Color        Color
	Transparency float32
	AnchorPoint  math.Vec2
}

// NewDot returns an unparented centered dot.
func NewDot(name string) *Dot {
	d := &Dot{AnchorPoint: math.Vec2{X: 0.5, Y: 0.5}}
	d.init(d, name)
	return d
}

// Clone returns a deep copy of the dot and its descendants.
func (d *Dot) Clone() Instance {
	c := NewDot(d.name)
	c.Position = d.Position
	c.DiameterPx = d.DiameterPx
	c.Color = d.Color
	c.Transparency = d.Transparency
	c.AnchorPoint = d.AnchorPoint
	d.cloneMetaInto(c)
	return c
}
