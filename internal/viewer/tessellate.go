package viewer

import (
	gomath "math"

	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// LineVertex is one endpoint of a wireframe line segment.
// Layout matches the line shader: position then color, tightly packed.
type LineVertex struct {
	X, Y, Z float32
	R, G, B float32
}

// circleSegments is the number of line segments used per wireframe circle.
const circleSegments = 16

// Tessellate walks the scene graph from root and emits line-list vertices
// for every Part it finds. Groups and other containers are recursed into;
// 2D nodes (Billboard, Label, Canvas, Dot) have no 3D wireframe.
func Tessellate(root scene.Instance) []LineVertex {
	var out []LineVertex
	appendInstance(&out, root)
	return out
}

func appendInstance(out *[]LineVertex, inst scene.Instance) {
	if p, ok := inst.(*scene.Part); ok {
		appendPart(out, p)
	}
	for _, child := range inst.Children() {
		appendInstance(out, child)
	}
}

// appendPart emits the wireframe for one part. A Mesh child overrides the
// rendered shape and rescales the rendered size without touching the part.
func appendPart(out *[]LineVertex, p *scene.Part) {
	shape := p.Shape
	size := p.Size
	tf := p.Transform

	for _, child := range p.Children() {
		m, ok := child.(*scene.Mesh)
		if !ok {
			continue
		}
		size = math.Vec3{X: size.X * m.Scale.X, Y: size.Y * m.Scale.Y, Z: size.Z * m.Scale.Z}
		tf.Position = p.Transform.PointToWorld(m.Offset)
		switch m.Kind {
		case scene.MeshSphere:
			shape = scene.Ball
		case scene.MeshCylinder:
			shape = scene.Cylinder
		case scene.MeshBrick:
			shape = scene.Block
		}
		break
	}

	switch shape {
	case scene.Ball:
		appendBall(out, tf, size, p.Color)
	case scene.Cylinder:
		appendCylinder(out, tf, size, p.Color)
	default:
		appendBlock(out, tf, size, p.Color)
	}
}

// blockEdges indexes the 12 edges of the corner array built in appendBlock.
var blockEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical edges
}

func appendBlock(out *[]LineVertex, tf math.Transform, size math.Vec3, color scene.Color) {
	h := size.Scale(0.5)
	corners := [8]math.Vec3{
		{X: -h.X, Y: -h.Y, Z: -h.Z},
		{X: h.X, Y: -h.Y, Z: -h.Z},
		{X: h.X, Y: -h.Y, Z: h.Z},
		{X: -h.X, Y: -h.Y, Z: h.Z},
		{X: -h.X, Y: h.Y, Z: -h.Z},
		{X: h.X, Y: h.Y, Z: -h.Z},
		{X: h.X, Y: h.Y, Z: h.Z},
		{X: -h.X, Y: h.Y, Z: h.Z},
	}
	for i := range corners {
		corners[i] = tf.PointToWorld(corners[i])
	}
	for _, e := range blockEdges {
		appendLine(out, corners[e[0]], corners[e[1]], color)
	}
}

func appendBall(out *[]LineVertex, tf math.Transform, size math.Vec3, color scene.Color) {
	r := size.X / 2
	appendCircle(out, tf.Position, tf.Right, tf.Up, r, color)
	appendCircle(out, tf.Position, tf.Right, tf.Forward, r, color)
	appendCircle(out, tf.Position, tf.Up, tf.Forward, r, color)
}

func appendCylinder(out *[]LineVertex, tf math.Transform, size math.Vec3, color scene.Color) {
	r := size.X / 2
	half := tf.Forward.Scale(size.Z / 2)
	near := tf.Position.Sub(half)
	far := tf.Position.Add(half)

	appendCircle(out, near, tf.Right, tf.Up, r, color)
	appendCircle(out, far, tf.Right, tf.Up, r, color)

	// Four side lines at the quarter points of the rings.
	for i := 0; i < 4; i++ {
		angle := float64(i) * gomath.Pi / 2
		offset := tf.Right.Scale(r * float32(gomath.Cos(angle))).
			Add(tf.Up.Scale(r * float32(gomath.Sin(angle))))
		appendLine(out, near.Add(offset), far.Add(offset), color)
	}
}

// appendCircle emits circleSegments line segments approximating a circle of
// radius r around center, in the plane spanned by u and v.
func appendCircle(out *[]LineVertex, center, u, v math.Vec3, r float32, color scene.Color) {
	point := func(i int) math.Vec3 {
		angle := 2 * gomath.Pi * float64(i) / circleSegments
		return center.
			Add(u.Scale(r * float32(gomath.Cos(angle)))).
			Add(v.Scale(r * float32(gomath.Sin(angle))))
	}
	for i := 0; i < circleSegments; i++ {
		appendLine(out, point(i), point(i+1), color)
	}
}

func appendLine(out *[]LineVertex, a, b math.Vec3, color scene.Color) {
	*out = append(*out,
		LineVertex{X: a.X, Y: a.Y, Z: a.Z, R: color.R, G: color.G, B: color.B},
		LineVertex{X: b.X, Y: b.Y, Z: b.Z, R: color.R, G: color.G, B: color.B},
	)
}
