package scene

import "github.com/Faultbox/gizmo/pkg/math"

// Billboard is a camera-facing panel attached to the part it is parented
// under. WorldSize is in world units (width, height).
type Billboard struct {
	Base

	WorldSize   math.Vec2
	Offset      math.Vec3
	AlwaysOnTop bool
}

// NewBillboard returns an unparented billboard of zero size.
func NewBillboard(name string) *Billboard {
	b := &Billboard{AlwaysOnTop: true}
	b.init(b, name)
	return b
}

// Clone returns a deep copy of the billboard and its descendants.
func (b *Billboard) Clone() Instance {
	c := NewBillboard(b.name)
	c.WorldSize = b.WorldSize
	c.Offset = b.Offset
	c.AlwaysOnTop = b.AlwaysOnTop
	b.cloneMetaInto(c)
	return c
}

// Label is a text block filling its parent billboard. CornerRadius is a
// fraction of the label height.
type Label struct {
	Base

	Text                   string
	TextColor              Color
	TextSize               float32
	BackgroundColor        Color
	BackgroundTransparency float32
	CornerRadius           float32
}

// NewLabel returns an unparented label with empty text.
func NewLabel(name string) *Label {
	l := &Label{
		TextColor:              Color{R: 1, G: 1, B: 1},
		BackgroundTransparency: 0.3,
	}
	l.init(l, name)
	return l
}

// Clone returns a deep copy of the label and its descendants.
func (l *Label) Clone() Instance {
	c := NewLabel(l.name)
	c.Text = l.Text
	c.TextColor = l.TextColor
	c.TextSize = l.TextSize
	c.BackgroundColor = l.BackgroundColor
	c.BackgroundTransparency = l.BackgroundTransparency
	c.CornerRadius = l.CornerRadius
	l.cloneMetaInto(c)
	return c
}
