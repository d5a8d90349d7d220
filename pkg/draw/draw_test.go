package draw

import (
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

func newTestContext() *Context {
	return New(Config{Rand: rand.New(rand.NewSource(1))})
}

func TestSetAndResetColor(t *testing.T) {
	c := newTestContext()
	original := c.Color()

	c.SetColor(scene.RGB(0.2, 0.4, 0.6))
	if c.Color() != scene.RGB(0.2, 0.4, 0.6) {
		t.Errorf("Color() = %v after SetColor", c.Color())
	}

	c.SetColor(scene.RGB(0, 1, 0))
	c.ResetColor()
	if c.Color() != original {
		t.Errorf("ResetColor: got %v, want built-in default %v", c.Color(), original)
	}
}

func TestSetRandomColorBounds(t *testing.T) {
	c := newTestContext()
	for i := 0; i < 100; i++ {
		c.SetRandomColor()
		col := c.Color()
		_, s, v := colorful.Color{R: float64(col.R), G: float64(col.G), B: float64(col.B)}.Hsv()
		if v < 0.99 || v > 1.01 {
			t.Fatalf("iteration %d: value = %v, want 1.0", i, v)
		}
		if s < 0.49 || s > 1.01 {
			t.Fatalf("iteration %d: saturation = %v, want [0.5, 1.0]", i, s)
		}
	}
}

func TestDefaultColorAppliesAtCallTime(t *testing.T) {
	c := newTestContext()
	c.SetColor(scene.RGB(0, 0, 1))
	first := c.Point(math.Vec3{}, nil)

	c.SetColor(scene.RGB(0, 1, 0))
	second := c.Point(math.Vec3{}, nil)

	if first.Color != scene.RGB(0, 0, 1) {
		t.Errorf("first point color changed retroactively: %v", first.Color)
	}
	if second.Color != scene.RGB(0, 1, 0) {
		t.Errorf("second point color = %v, want the new default", second.Color)
	}
}

func TestExplicitColorWins(t *testing.T) {
	c := newTestContext()
	c.SetColor(scene.RGB(0, 0, 1))
	want := scene.RGB(1, 1, 0)
	p := c.Point(math.Vec3{}, &PointOptions{Color: &want})
	if p.Color != want {
		t.Errorf("point color = %v, want explicit %v", p.Color, want)
	}
}

func TestDefaultParentResolvedPerCall(t *testing.T) {
	a := scene.NewGroup("a")
	b := scene.NewGroup("b")
	target := scene.Instance(a)
	c := New(Config{Parent: func() scene.Instance { return target }})

	first := c.Point(math.Vec3{}, nil)
	target = b
	second := c.Point(math.Vec3{}, nil)

	if first.Parent() != scene.Instance(a) {
		t.Errorf("first parent = %v, want a", first.Parent())
	}
	if second.Parent() != scene.Instance(b) {
		t.Errorf("second parent = %v, want b", second.Parent())
	}
}

func TestDefaultParentNilResolver(t *testing.T) {
	c := newTestContext()
	if got := c.DefaultParent(); got != nil {
		t.Errorf("DefaultParent() = %v, want nil", got)
	}
	p := c.Point(math.Vec3{}, nil)
	if p.Parent() != nil {
		t.Errorf("point parent = %v, want nil", p.Parent())
	}
}

func TestFixedParent(t *testing.T) {
	g := scene.NewGroup("g")
	c := New(Config{Parent: FixedParent(g)})
	if c.DefaultParent() != scene.Instance(g) {
		t.Error("FixedParent did not resolve to the instance")
	}
}

func TestModalParent(t *testing.T) {
	stopped := scene.NewGroup("stopped")
	authority := scene.NewGroup("authority")
	view := scene.NewGroup("view")

	mode := RunStopped
	resolve := ModalParent(func() RunMode { return mode }, stopped, authority, view)

	if resolve() != scene.Instance(stopped) {
		t.Error("stopped mode resolved wrong parent")
	}
	mode = RunAuthority
	if resolve() != scene.Instance(authority) {
		t.Error("authority mode resolved wrong parent")
	}
	mode = RunView
	if resolve() != scene.Instance(view) {
		t.Error("view mode resolved wrong parent")
	}
}

func TestUniformGridSnap(t *testing.T) {
	g := UniformGrid{Cell: 4}

	if got := g.CellCenter(math.Vec3{X: 1, Y: 1, Z: 1}); got != (math.Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("CellCenter(1,1,1) = %v, want (2,2,2)", got)
	}
	if got := g.CellCenter(math.Vec3{X: -1, Y: -1, Z: -1}); got != (math.Vec3{X: -2, Y: -2, Z: -2}) {
		t.Errorf("CellCenter(-1,-1,-1) = %v, want (-2,-2,-2)", got)
	}
	if got := g.CellSize(); got != (math.Vec3{X: 4, Y: 4, Z: 4}) {
		t.Errorf("CellSize() = %v, want (4,4,4)", got)
	}
}
