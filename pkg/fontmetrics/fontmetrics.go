// Package fontmetrics measures rendered text extents using a fixed bitmap
// face from golang.org/x/image. It is the default text measurer for the
// draw package; hosts with a real text pipeline can supply their own.
package fontmetrics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer measures text against a font face, scaling the face's native
// metrics to a requested line height.
type Measurer struct {
	face       font.Face
	lineHeight float32
}

// New returns a measurer over the built-in 7x13 bitmap face.
func New() *Measurer {
	return NewWithFace(basicfont.Face7x13)
}

// NewWithFace returns a measurer over the given face.
func NewWithFace(face font.Face) *Measurer {
	m := face.Metrics()
	return &Measurer{
		face:       face,
		lineHeight: float32(m.Height.Ceil()),
	}
}

// Measure returns the rendered extents of text at the given line height
// (size): the widest line's advance, the total height (lines x size) and the
// line count. Empty text measures as a single empty line.
func (m *Measurer) Measure(text string, size float32) (width, height float32, lines int) {
	split := strings.Split(text, "\n")
	scale := size / m.lineHeight

	var widest float32
	for _, line := range split {
		adv := float32(font.MeasureString(m.face, line).Ceil()) * scale
		if adv > widest {
			widest = adv
		}
	}

	lines = len(split)
	return widest, float32(lines) * size, lines
}
