package math

// Transform is a rigid transform: a position plus an orthonormal rotation
// basis. The basis columns are the world-space directions of the local
// X (Right), Y (Up) and Z-facing (Forward) axes.
type Transform struct {
	Position Vec3
	Right    Vec3
	Up       Vec3
	Forward  Vec3
}

// TransformIdentity returns the identity transform at the origin.
func TransformIdentity() Transform {
	return Transform{
		Right:   Vec3{1, 0, 0},
		Up:      Vec3{0, 1, 0},
		Forward: Vec3{0, 0, 1},
	}
}

// TransformAt returns an identity-rotation transform at the given position.
func TransformAt(p Vec3) Transform {
	t := TransformIdentity()
	t.Position = p
	return t
}

// LookAtTransform returns a transform positioned at from with its forward
// axis pointing toward to. When from and to coincide (or nearly so) the
// orientation is undefined and the identity basis is returned instead.
func LookAtTransform(from, to Vec3) Transform {
	dir := to.Sub(from)
	if dir.Length() < 1e-6 {
		return TransformAt(from)
	}

	forward := dir.Normalize()
	worldUp := Vec3{0, 1, 0}
	// Forward parallel to world up: fall back to world X as the up hint.
	if absf(forward.Dot(worldUp)) > 0.9999 {
		worldUp = Vec3{1, 0, 0}
	}

	right := worldUp.Cross(forward).Normalize()
	up := forward.Cross(right)

	return Transform{
		Position: from,
		Right:    right,
		Up:       up,
		Forward:  forward,
	}
}

// TransformFromQuat returns a transform at the given position with the
// orientation of q.
func TransformFromQuat(position Vec3, q Quat) Transform {
	m := q.ToMat4()
	return Transform{
		Position: position,
		Right:    m.TransformVec3(Vec3{X: 1}),
		Up:       m.TransformVec3(Vec3{Y: 1}),
		Forward:  m.TransformVec3(Vec3{Z: 1}),
	}
}

// PointToWorld transforms a point from local space to world space.
func (t Transform) PointToWorld(p Vec3) Vec3 {
	return t.Position.
		Add(t.Right.Scale(p.X)).
		Add(t.Up.Scale(p.Y)).
		Add(t.Forward.Scale(p.Z))
}

// VectorToWorld rotates a local direction into world space (no translation).
func (t Transform) VectorToWorld(v Vec3) Vec3 {
	return t.Right.Scale(v.X).
		Add(t.Up.Scale(v.Y)).
		Add(t.Forward.Scale(v.Z))
}

// Mat4 returns the equivalent column-major 4x4 matrix.
func (t Transform) Mat4() Mat4 {
	return Mat4{
		t.Right.X, t.Right.Y, t.Right.Z, 0,
		t.Up.X, t.Up.Y, t.Up.Z, 0,
		t.Forward.X, t.Forward.Y, t.Forward.Z, 0,
		t.Position.X, t.Position.Y, t.Position.Z, 1,
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
