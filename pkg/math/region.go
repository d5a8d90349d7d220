package math

// Region is an axis-aligned box in world space, stored as min/max corners.
type Region struct {
	Min Vec3
	Max Vec3
}

// NewRegion returns the region spanning the two corners, normalizing the
// min/max ordering per axis.
func NewRegion(a, b Vec3) Region {
	return Region{
		Min: Vec3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)},
		Max: Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)},
	}
}

// Center returns the center point of the region.
func (r Region) Center() Vec3 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Size returns the extents of the region.
func (r Region) Size() Vec3 {
	return r.Max.Sub(r.Min)
}

// Transform returns an identity-rotation transform at the region's center.
func (r Region) Transform() Transform {
	return TransformAt(r.Center())
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
