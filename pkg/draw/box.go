package draw

import (
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// BoxOptions overrides the defaults of Box, BoxAt, Region and TerrainCell.
// A nil *BoxOptions means all defaults.
type BoxOptions struct {
	Color  *scene.Color
	Parent scene.Instance
}

// Box draws a box of the given size, axis-aligned in the transform's local
// space.
func (c *Context) Box(tf math.Transform, size math.Vec3, opts *BoxOptions) *scene.Part {
	if opts == nil {
		opts = &BoxOptions{}
	}
	col, parent := c.pick(opts.Color, opts.Parent)

	box := scene.NewPart("Box")
	box.Shape = scene.Block
	box.Material = scene.ForceField
	box.Transform = tf
	box.Size = size
	box.Color = col
	box.Transparency = 0.5
	box.CanCollide = false
	box.CastShadow = false
	box.Locked = true
	box.SetParent(parent)
	return box
}

// BoxAt draws a world-axis-aligned box centered at the given position.
func (c *Context) BoxAt(position math.Vec3, size math.Vec3, opts *BoxOptions) *scene.Part {
	return c.Box(math.TransformAt(position), size, opts)
}

// Region draws the box covering the region.
func (c *Context) Region(r math.Region, opts *BoxOptions) *scene.Part {
	return c.Box(r.Transform(), r.Size(), opts)
}

// TerrainCell snaps the position to the center of the voxel cell containing
// it and draws a box of one cell's dimensions there. Any two positions in
// the same cell produce boxes at the identical center.
func (c *Context) TerrainCell(position math.Vec3, opts *BoxOptions) *scene.Part {
	center := c.grid.CellCenter(position)
	box := c.BoxAt(center, c.grid.CellSize(), opts)
	box.SetName("TerrainCell")
	return box
}
