package draw

import (
	"testing"

	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

func TestCFrameBuildsMarkerAndAxes(t *testing.T) {
	c := newTestContext()
	tf := math.TransformAt(math.Vec3{X: 1, Y: 2, Z: 3})

	group := c.CFrame(tf)
	children := group.Children()
	if len(children) != 4 {
		t.Fatalf("cframe group has %d children, want point + 3 axes", len(children))
	}

	marker, ok := children[0].(*scene.Part)
	if !ok || marker.Shape != scene.Ball {
		t.Errorf("first child = %T, want the ball marker", children[0])
	}
	if marker.Transform.Position != tf.Position {
		t.Errorf("marker position = %v, want %v", marker.Transform.Position, tf.Position)
	}

	wantColors := []scene.Color{axisColorX, axisColorY, axisColorZ}
	wantDirs := []math.Vec3{tf.Right, tf.Up, tf.Forward}
	for i := 0; i < 3; i++ {
		shaft, ok := children[i+1].(*scene.Part)
		if !ok {
			t.Fatalf("child %d = %T, want axis shaft", i+1, children[i+1])
		}
		if shaft.Color != wantColors[i] {
			t.Errorf("axis %d color = %v, want %v", i, shaft.Color, wantColors[i])
		}
		if !almostEqual(shaft.Transform.Forward, wantDirs[i], 0.001) {
			t.Errorf("axis %d direction = %v, want %v", i, shaft.Transform.Forward, wantDirs[i])
		}
		if shaft.Size.Z != cframeAxisLength {
			t.Errorf("axis %d length = %v, want %v", i, shaft.Size.Z, float32(cframeAxisLength))
		}
	}
}

func TestCFrameAxisColorsIgnoreDefault(t *testing.T) {
	c := newTestContext()
	c.SetColor(scene.RGB(0.5, 0.5, 0.5))

	group := c.CFrame(math.TransformIdentity())
	shaft := group.Children()[1].(*scene.Part)
	if shaft.Color != axisColorX {
		t.Errorf("X axis color = %v, want fixed red", shaft.Color)
	}
}
