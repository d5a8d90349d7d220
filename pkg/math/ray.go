package math

// Ray is a ray in 3D space. Direction carries both orientation and length;
// a zero direction is a degenerate (zero-length) ray.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// Length returns the magnitude of the ray's direction.
func (r Ray) Length() float32 {
	return r.Direction.Length()
}

// Midpoint returns the point halfway along the ray.
func (r Ray) Midpoint() Vec3 {
	return r.Origin.Add(r.Direction.Scale(0.5))
}

// End returns the point at the far end of the ray.
func (r Ray) End() Vec3 {
	return r.Origin.Add(r.Direction)
}

// Unit returns a ray with the same origin and a normalized direction.
// The zero ray is returned unchanged.
func (r Ray) Unit() Ray {
	return Ray{Origin: r.Origin, Direction: r.Direction.Normalize()}
}
