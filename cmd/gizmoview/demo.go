package main

import (
	gomath "math"

	"github.com/Faultbox/gizmo/pkg/draw"
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// RaySweep animates one drawn ray around the scene so the handle update
// path is exercised every frame.
type RaySweep struct {
	handle *draw.RayHandle
	origin math.Vec3
}

// Step repoints the swept ray for the given frame.
func (s *RaySweep) Step(frame uint64) {
	angle := float64(frame) * 0.01
	dir := math.Vec3{
		X: 6 * float32(gomath.Cos(angle)),
		Y: 2,
		Z: 6 * float32(gomath.Sin(angle)),
	}
	s.handle.Update(math.Ray{Origin: s.origin, Direction: dir}, nil)
}

// BuildDemo populates the world with one of everything the draw context
// can produce and returns the animated ray sweep.
func BuildDemo(c *draw.Context, world *scene.Group) *RaySweep {
	// Points in a small cluster, one per flavor.
	c.Point(math.Vec3{X: -6, Y: 1, Z: -6}, nil)
	c.Point(math.Vec3{X: -6, Y: 1, Z: -4}, &draw.PointOptions{Diameter: 2})
	c.PointAt(math.LookAtTransform(
		math.Vec3{X: -6, Y: 1, Z: -2},
		math.Vec3{X: 0, Y: 1, Z: 0},
	), nil)
	c.Sphere(math.Vec3{X: -6, Y: 2, Z: 2}, 1.5, nil)
	c.LabelledPoint(math.Vec3{X: -6, Y: 1, Z: 5}, "anchor", nil)

	// Static rays and a vector.
	c.SetColor(scene.RGB(1, 1, 0))
	c.Ray(math.Ray{
		Origin:    math.Vec3{X: 6, Y: 0, Z: -6},
		Direction: math.Vec3{X: 0, Y: 4, Z: 0},
	}, nil)
	c.Vector(math.Vec3{X: 6, Y: 0, Z: -3}, math.Vec3{X: -2, Y: 3, Z: 1},
		&draw.RayOptions{Diameter: 0.4, MeshDiameter: 0.4})
	c.ResetColor()

	// Boxes.
	c.BoxAt(math.Vec3{X: 0, Y: 1, Z: -8}, math.Vec3{X: 2, Y: 2, Z: 2}, nil)
	tilt := math.QuatFromAxisAngle(math.Vec3{Y: 1}, gomath.Pi/6)
	c.Box(math.TransformFromQuat(math.Vec3{X: 3, Y: 1, Z: -8}, tilt),
		math.Vec3{X: 1, Y: 1, Z: 3}, nil)
	c.Region(math.NewRegion(
		math.Vec3{X: -3, Y: 0, Z: 7},
		math.Vec3{X: -1, Y: 2, Z: 9},
	), nil)
	c.SetRandomColor()
	c.TerrainCell(math.Vec3{X: 5, Y: 0, Z: 7}, nil)
	c.ResetColor()

	// Axes and rings.
	c.CFrame(math.LookAtTransform(
		math.Vec3{X: 0, Y: 4, Z: 0},
		math.Vec3{X: 2, Y: 4, Z: 2},
	))
	c.Ring(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{Y: 1}, 8, nil)
	c.Ring(math.Vec3{X: 0, Y: 4, Z: 0}, math.Vec3{X: 1, Y: 1}, 3,
		&draw.RingOptions{Color: &scene.Color{G: 1}})

	// A ghosted template part.
	template := scene.NewPart("crate")
	template.Size = math.Vec3{X: 2, Y: 3, Z: 2}
	mesh := scene.NewMesh("Mesh", scene.MeshBrick)
	mesh.Scale = math.Vec3{X: 1.2, Y: 1, Z: 1.2}
	mesh.SetParent(template)
	c.Part(template, math.TransformAt(math.Vec3{X: 8, Y: 1.5, Z: 3}), nil)

	// Free-standing text.
	c.Text(draw.AtPosition(math.Vec3{X: 0, Y: 7, Z: 0}), "gizmo demo\nESC quits", nil)

	// Screen-space overlay, in normalized coordinates.
	hud := scene.NewCanvas("HUD")
	hud.Size = math.Vec2{X: 1, Y: 1}
	hud.SetParent(world)
	c.ScreenPoint(math.Vec2{X: 0.05, Y: 0.05}, hud, nil)
	line := c.ScreenPointLine(math.Vec2{X: 0.1, Y: 0.9}, math.Vec2{X: 0.3, Y: 0.7}, nil)
	line.SetParent(hud)

	origin := math.Vec3{X: 6, Y: 1, Z: 0}
	swept := c.Ray(math.Ray{Origin: origin, Direction: math.Vec3{X: 6, Y: 2, Z: 0}},
		&draw.RayOptions{Color: &scene.Color{R: 1, G: 0.5}})
	return &RaySweep{handle: swept, origin: origin}
}
