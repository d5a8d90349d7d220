package draw

import (
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// DefaultPartTransparency is used when PartOptions leaves it unset.
const DefaultPartTransparency = 0.75

// PartOptions overrides the defaults of Part. A nil *PartOptions means all
// defaults.
type PartOptions struct {
	Color        *scene.Color
	Parent       scene.Instance
	Transparency *float32 // nil means DefaultPartTransparency
}

// Part draws a ghost copy of the template at the given transform: the
// template is cloned, stripped of tags, attributes and all children except
// meshes (which are themselves stripped bare), and re-presented as a
// non-colliding translucent shape.
func (c *Context) Part(template *scene.Part, tf math.Transform, opts *PartOptions) *scene.Part {
	if opts == nil {
		opts = &PartOptions{}
	}
	col, parent := c.pick(opts.Color, opts.Parent)
	transparency := float32(DefaultPartTransparency)
	if opts.Transparency != nil {
		transparency = *opts.Transparency
	}

	ghost := template.Clone().(*scene.Part)
	ghost.ClearTags()
	ghost.ClearAttributes()
	for _, child := range ghost.Children() {
		mesh, ok := child.(*scene.Mesh)
		if !ok {
			child.Destroy()
			continue
		}
		mesh.ClearTags()
		mesh.ClearAttributes()
		for _, grandchild := range mesh.Children() {
			grandchild.Destroy()
		}
	}

	ghost.Material = scene.ForceField
	ghost.Color = col
	ghost.Transparency = transparency
	ghost.Reflectance = 0
	ghost.Anchored = true
	ghost.CanCollide = false
	ghost.CastShadow = false
	ghost.Locked = true
	ghost.Transform = tf
	ghost.SetParent(parent)
	return ghost
}
