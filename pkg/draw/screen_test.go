package draw

import (
	"testing"

	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

func TestScreenPointDefaults(t *testing.T) {
	c := newTestContext()
	parent := scene.NewCanvas("screen")
	dot := c.ScreenPoint(math.Vec2{X: 0.5, Y: 0.25}, parent, nil)

	if dot.Position != (math.Vec2{X: 0.5, Y: 0.25}) {
		t.Errorf("position = %v", dot.Position)
	}
	if dot.DiameterPx != DefaultScreenPointDiameter {
		t.Errorf("diameter = %v, want %v", dot.DiameterPx, float32(DefaultScreenPointDiameter))
	}
	if dot.AnchorPoint != (math.Vec2{X: 0.5, Y: 0.5}) {
		t.Errorf("anchor = %v, want centered", dot.AnchorPoint)
	}
	if dot.Parent() != scene.Instance(parent) {
		t.Errorf("parent = %v, want the given canvas", dot.Parent())
	}
}

func TestScreenPointLineStampCount(t *testing.T) {
	c := newTestContext()
	canvas := c.ScreenPointLine(math.Vec2{X: 0.1, Y: 0.1}, math.Vec2{X: 0.3, Y: 0.5}, nil)

	children := canvas.Children()
	if len(children) != 26 {
		t.Fatalf("line has %d markers, want 26", len(children))
	}
	for i, child := range children {
		dot, ok := child.(*scene.Dot)
		if !ok {
			t.Fatalf("marker %d is %T, want *scene.Dot", i, child)
		}
		if dot.DiameterPx != 3 {
			t.Errorf("marker %d diameter = %v, want 3", i, dot.DiameterPx)
		}
	}
}

func TestScreenPointLineBoundingBox(t *testing.T) {
	c := newTestContext()
	canvas := c.ScreenPointLine(math.Vec2{X: 0.6, Y: 0.1}, math.Vec2{X: 0.2, Y: 0.4}, nil)

	if canvas.Position != (math.Vec2{X: 0.2, Y: 0.1}) {
		t.Errorf("canvas position = %v, want the min corner (0.2,0.1)", canvas.Position)
	}
	want := math.Vec2{X: 0.4, Y: 0.3}
	if canvas.Size.Sub(want).Length() > 0.0001 {
		t.Errorf("canvas size = %v, want %v", canvas.Size, want)
	}
}

func TestScreenPointLineRising(t *testing.T) {
	c := newTestContext()
	canvas := c.ScreenPointLine(math.Vec2{X: 0, Y: 0}, math.Vec2{X: 1, Y: 1}, nil)

	children := canvas.Children()
	first := children[0].(*scene.Dot)
	last := children[len(children)-1].(*scene.Dot)
	if first.Position != (math.Vec2{X: 0, Y: 0}) {
		t.Errorf("first marker at %v, want top-left", first.Position)
	}
	if last.Position != (math.Vec2{X: 1, Y: 1}) {
		t.Errorf("last marker at %v, want bottom-right", last.Position)
	}
}

func TestScreenPointLineFallingMirrorsVertically(t *testing.T) {
	c := newTestContext()
	canvas := c.ScreenPointLine(math.Vec2{X: 0, Y: 0.5}, math.Vec2{X: 0.5, Y: 0}, nil)

	children := canvas.Children()
	first := children[0].(*scene.Dot)
	last := children[len(children)-1].(*scene.Dot)
	if first.Position != (math.Vec2{X: 0, Y: 1}) {
		t.Errorf("first marker at %v, want bottom-left", first.Position)
	}
	if last.Position != (math.Vec2{X: 1, Y: 0}) {
		t.Errorf("last marker at %v, want top-right", last.Position)
	}
}

func TestScreenPointLineZeroLength(t *testing.T) {
	c := newTestContext()
	p := math.Vec2{X: 0.4, Y: 0.4}
	canvas := c.ScreenPointLine(p, p, nil)

	if len(canvas.Children()) != 0 {
		t.Errorf("zero-length line has %d markers, want 0", len(canvas.Children()))
	}
	if canvas.Size != (math.Vec2{}) {
		t.Errorf("zero-length canvas size = %v, want zero", canvas.Size)
	}
}

func TestScreenPointLineVertical(t *testing.T) {
	// A vertical segment is degenerate for the slope branch but must still
	// stamp the full marker count inside a zero-width container.
	c := newTestContext()
	canvas := c.ScreenPointLine(math.Vec2{X: 0.5, Y: 0.1}, math.Vec2{X: 0.5, Y: 0.9}, nil)

	if len(canvas.Children()) != 26 {
		t.Errorf("vertical line has %d markers, want 26", len(canvas.Children()))
	}
	if canvas.Size.X != 0 {
		t.Errorf("vertical canvas width = %v, want 0", canvas.Size.X)
	}
}
