package draw

import (
	gomath "math"

	"github.com/Faultbox/gizmo/pkg/math"
)

// CellGrid locates the voxel cell containing a world position.
type CellGrid interface {
	// CellCenter returns the center of the cell containing p.
	CellCenter(p math.Vec3) math.Vec3
	// CellSize returns the extents of one cell.
	CellSize() math.Vec3
}

// UniformGrid is an axis-aligned voxel grid of cubic cells anchored at the
// origin.
type UniformGrid struct {
	Cell float32
}

// CellCenter snaps p to the center of its cell. Positions on a cell boundary
// snap toward positive infinity.
func (g UniformGrid) CellCenter(p math.Vec3) math.Vec3 {
	return math.Vec3{
		X: snap(p.X, g.Cell),
		Y: snap(p.Y, g.Cell),
		Z: snap(p.Z, g.Cell),
	}
}

// CellSize returns the cubic cell extents.
func (g UniformGrid) CellSize() math.Vec3 {
	return math.Vec3{X: g.Cell, Y: g.Cell, Z: g.Cell}
}

func snap(v, cell float32) float32 {
	return float32(gomath.Floor(float64(v/cell)))*cell + cell/2
}
