// Package main is the entry point for the gizmo wireframe viewer.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gizmo/internal/config"
	"github.com/Faultbox/gizmo/internal/logging"
	"github.com/Faultbox/gizmo/internal/viewer"
	"github.com/Faultbox/gizmo/pkg/draw"
	"github.com/Faultbox/gizmo/pkg/math"
	"github.com/Faultbox/gizmo/pkg/scene"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("=== Gizmo Viewer ===")
	log.Sugar().Debugf("Config: %+v", cfg)

	if err := run(cfg, log); err != nil {
		log.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("viewer closed normally")
}

func run(cfg *config.Config, log *zap.Logger) error {
	win, err := viewer.NewWindow(viewer.WindowConfig{
		Title:      "Gizmo Viewer",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, log)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	renderer, err := viewer.NewLineRenderer(log)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer renderer.Close()

	width, height := win.GetSize()
	renderer.Resize(width, height)

	// Build the demo scene.
	world := scene.NewGroup("World")
	dctx := draw.New(draw.Config{
		Parent: draw.FixedParent(world),
		Grid:   draw.UniformGrid{Cell: cfg.Draw.CellSize},
		Rand:   demoRand(cfg.Draw.Seed),
		Logger: log,
	})
	dctx.SetColor(scene.Color{
		R: cfg.Draw.DefaultColor[0],
		G: cfg.Draw.DefaultColor[1],
		B: cfg.Draw.DefaultColor[2],
	})
	sweep := BuildDemo(dctx, world)

	camera := viewer.NewOrbitCamera()
	camera.Center = math.Vec3{X: 0, Y: 2, Z: 0}

	log.Info("entering render loop")

	var (
		dragging bool
		frame    uint64
	)
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					camera.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				camera.HandleZoom(float32(e.Y))
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					renderer.Resize(int(e.Data1), int(e.Data2))
				}
			}
		}

		// WASD pans, QE moves vertically.
		keys := sdl.GetKeyboardState()
		var forward, right, up float32
		if keys[sdl.SCANCODE_W] != 0 {
			forward += 1
		}
		if keys[sdl.SCANCODE_S] != 0 {
			forward -= 1
		}
		if keys[sdl.SCANCODE_D] != 0 {
			right += 1
		}
		if keys[sdl.SCANCODE_A] != 0 {
			right -= 1
		}
		if keys[sdl.SCANCODE_E] != 0 {
			up += 1
		}
		if keys[sdl.SCANCODE_Q] != 0 {
			up -= 1
		}
		if forward != 0 || right != 0 || up != 0 {
			camera.HandleMovement(forward, right, up)
		}

		sweep.Step(frame)
		frame++

		width, height := win.GetSize()
		proj := math.Perspective(1.0, float32(width)/float32(height), 0.1, 1000)
		mvp := proj.Mul(camera.ViewMatrix())

		renderer.Begin()
		renderer.Draw(viewer.Tessellate(world), mvp)
		win.SwapBuffers()
	}
}

// demoRand returns a seeded source when the config pins one, so a demo run
// can be reproduced, and nil otherwise (draw.New falls back to time seeding).
func demoRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}
