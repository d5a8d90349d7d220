package scene

import (
	"testing"

	"github.com/Faultbox/gizmo/pkg/math"
)

func TestPartCloneDeepCopies(t *testing.T) {
	p := NewPart("template")
	p.Shape = Ball
	p.Size = math.Vec3{X: 2, Y: 2, Z: 2}
	p.Color = RGB(0.1, 0.2, 0.3)
	p.Transparency = 0.5
	p.SetAttribute("owner", "npc-7")
	p.AddTag("pickable")

	mesh := NewMesh("mesh", MeshSphere)
	mesh.Scale = math.Vec3{X: 1.5, Y: 1.5, Z: 1.5}
	mesh.SetParent(p)

	c := p.Clone().(*Part)

	if c.Parent() != nil {
		t.Error("clone has a parent")
	}
	if c.Shape != Ball || c.Size != p.Size || c.Color != p.Color || c.Transparency != 0.5 {
		t.Errorf("clone fields differ: %+v", c)
	}
	if v, ok := c.Attribute("owner"); !ok || v != "npc-7" {
		t.Error("clone missing attribute")
	}
	if !c.HasTag("pickable") {
		t.Error("clone missing tag")
	}
	if len(c.Children()) != 1 {
		t.Fatalf("clone has %d children, want 1", len(c.Children()))
	}

	// The child is a copy, not a shared reference.
	cm, ok := c.Children()[0].(*Mesh)
	if !ok {
		t.Fatalf("clone child is %T, want *Mesh", c.Children()[0])
	}
	if cm == mesh {
		t.Error("clone shares the mesh child with the original")
	}
	cm.Scale = math.Vec3{X: 9, Y: 9, Z: 9}
	if mesh.Scale.X == 9 {
		t.Error("mutating the clone's child changed the original")
	}
}

func TestNewPartDefaults(t *testing.T) {
	p := NewPart("p")
	if p.Shape != Block {
		t.Errorf("default shape = %v, want Block", p.Shape)
	}
	if p.Size != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("default size = %v, want unit", p.Size)
	}
	if !p.Anchored {
		t.Error("new parts should be anchored")
	}
}
