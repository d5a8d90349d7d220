package draw

import (
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// Text layout constants. The derived ratios below (padding, aspect, corner
// rounding) are contractual; changing them changes every label's proportions.
const (
	// textRefSize is the line height text is measured at.
	textRefSize = 32
	// textLineWorldSize is the world-space height budget per text line.
	textLineWorldSize = 2
	// textWorldScale scales the final world height of the block.
	textWorldScale = 0.5
)

// Adornee is what a text block attaches to: either a raw position (a new
// anchor is created there) or an existing part. The type is a closed sum;
// use AtPosition or OnPart.
type Adornee interface {
	adornee()
}

type positionAdornee struct{ p math.Vec3 }
type partAdornee struct{ part *scene.Part }

func (positionAdornee) adornee() {}
func (partAdornee) adornee()     {}

// AtPosition adorns a standalone anchor created at p.
func AtPosition(p math.Vec3) Adornee { return positionAdornee{p: p} }

// OnPart adorns an existing part.
func OnPart(part *scene.Part) Adornee { return partAdornee{part: part} }

// TextOptions overrides the defaults of Text. A nil *TextOptions means all
// defaults.
type TextOptions struct {
	Color *scene.Color
}

// Text attaches a text block to the adornee. The block's container preserves
// the measured aspect ratio of the padded text, with padding of half a line
// height on every side; its world height is proportional to the line count.
func (c *Context) Text(target Adornee, text string, opts *TextOptions) *scene.Billboard {
	if opts == nil {
		opts = &TextOptions{}
	}
	col, _ := c.pick(opts.Color, nil)

	var anchor *scene.Part
	switch a := target.(type) {
	case positionAdornee:
		anchor = scene.NewPart("TextAnchor")
		anchor.Transform = math.TransformAt(a.p)
		anchor.Size = math.Vec3{X: 0.1, Y: 0.1, Z: 0.1}
		anchor.Transparency = 1
		anchor.CanCollide = false
		anchor.CastShadow = false
		anchor.Locked = true
		anchor.SetParent(c.DefaultParent())
	case partAdornee:
		anchor = a.part
	}

	width, height, lines := c.measurer.Measure(text, textRefSize)
	if lines < 1 {
		lines = 1
	}
	lineHeight := height / float32(lines)
	padding := lineHeight / 2
	paddedWidth := width + 2*padding
	paddedHeight := height + 2*padding
	aspect := paddedWidth / paddedHeight

	worldHeight := float32(lines) * textLineWorldSize * textWorldScale

	billboard := scene.NewBillboard("Text")
	billboard.WorldSize = math.Vec2{X: aspect * worldHeight, Y: worldHeight}

	label := scene.NewLabel("Label")
	label.Text = text
	label.TextColor = scene.Color{R: 1, G: 1, B: 1}
	label.TextSize = textRefSize
	label.BackgroundColor = col
	label.BackgroundTransparency = 0.3
	label.CornerRadius = padding / paddedHeight / 2
	label.SetParent(billboard)

	billboard.SetParent(anchor)
	return billboard
}
