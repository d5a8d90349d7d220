// Package draw builds transient debug-visualization shapes — points, rays,
// boxes, rings, text labels and screen-space markers — as scene instances.
// Every call computes the derived transforms and sizes from its geometric
// inputs, constructs one or more nodes, parents them and returns the handle;
// the package keeps no reference to what it built. Callers own the returned
// instances and destroy them through the scene graph.
//
// A Context is single-goroutine: the only mutable state is its current
// default color, read once at each call.
package draw

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/gizmo/pkg/fontmetrics"
	"github.com/Faultbox/gizmo/pkg/scene"
)

// TextMeasurer reports rendered text extents at a given line height.
type TextMeasurer interface {
	Measure(text string, size float32) (width, height float32, lines int)
}

// defaultColor is the built-in default restored by ResetColor.
var defaultColor = scene.Color{R: 1, G: 0, B: 0}

// Config supplies the collaborators a Context needs. Zero-value fields get
// working defaults.
type Config struct {
	// Parent resolves the default parent for shapes created without an
	// explicit one. Nil leaves such shapes unparented.
	Parent ParentResolver

	// Measurer sizes text blocks. Defaults to fontmetrics.New().
	Measurer TextMeasurer

	// Grid snaps positions to terrain cells. Defaults to UniformGrid{Cell: 4}.
	Grid CellGrid

	// Rand drives SetRandomColor. Defaults to a time-seeded source.
	Rand *rand.Rand

	// Logger receives debug-level construction logs. Defaults to a nop.
	Logger *zap.Logger
}

// Context is the shape builder. Its only state is the current default color;
// everything else is injected collaborators.
type Context struct {
	color    scene.Color
	resolve  ParentResolver
	measurer TextMeasurer
	grid     CellGrid
	rng      *rand.Rand
	log      *zap.Logger
}

// New returns a Context with the built-in default color.
func New(cfg Config) *Context {
	c := &Context{
		color:    defaultColor,
		resolve:  cfg.Parent,
		measurer: cfg.Measurer,
		grid:     cfg.Grid,
		rng:      cfg.Rand,
		log:      cfg.Logger,
	}
	if c.measurer == nil {
		c.measurer = fontmetrics.New()
	}
	if c.grid == nil {
		c.grid = UniformGrid{Cell: 4}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// SetColor sets the default color used by calls without an explicit color.
// Shapes already created keep the color they were built with.
func (c *Context) SetColor(col scene.Color) {
	c.color = col
}

// ResetColor restores the built-in default color.
func (c *Context) ResetColor() {
	c.color = defaultColor
}

// SetRandomColor sets the default color to a random hue with saturation in
// [0.5, 1.0] and full value.
func (c *Context) SetRandomColor() {
	h := c.rng.Float64() * 360
	s := 0.5 + c.rng.Float64()*0.5
	col := colorful.Hsv(h, s, 1.0)
	c.color = scene.Color{R: float32(col.R), G: float32(col.G), B: float32(col.B)}
	c.log.Debug("random default color",
		zap.Float64("hue", h),
		zap.Float64("saturation", s),
	)
}

// Color returns the current default color.
func (c *Context) Color() scene.Color {
	return c.color
}

// DefaultParent returns the context-dependent parent shapes attach to when
// none is given, or nil when no resolver was configured.
func (c *Context) DefaultParent() scene.Instance {
	if c.resolve == nil {
		return nil
	}
	return c.resolve()
}

// pick resolves the per-call color and parent: explicit values win, the
// context defaults apply otherwise. Resolution happens here, at call time.
func (c *Context) pick(color *scene.Color, parent scene.Instance) (scene.Color, scene.Instance) {
	col := c.color
	if color != nil {
		col = *color
	}
	if parent == nil {
		parent = c.DefaultParent()
	}
	return col, parent
}
