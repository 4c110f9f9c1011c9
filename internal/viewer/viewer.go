// Package viewer implements the interactive grass viewer loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/frame"
	"github.com/Faultbox/meadow/internal/engine/framebuffer"
	"github.com/Faultbox/meadow/internal/engine/input"
	"github.com/Faultbox/meadow/internal/engine/renderer"
	"github.com/Faultbox/meadow/internal/engine/scene"
	"github.com/Faultbox/meadow/internal/engine/window"
	"github.com/Faultbox/meadow/internal/export"
	"github.com/Faultbox/meadow/internal/field"
	"github.com/Faultbox/meadow/internal/logger"
)

// Viewer is the interactive viewer instance.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	updater  *frame.Updater
	log      *zap.Logger

	screenshotRequested bool
}

// New creates the window, GL state and scene, and uploads the field.
func New(cfg *config.Config, f *field.Field) (*Viewer, error) {
	gfx := cfg.Graphics
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.Int("width", gfx.Width),
		zap.Int("height", gfx.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      "meadow",
		Width:      gfx.Width,
		Height:     gfx.Height,
		Fullscreen: gfx.Fullscreen,
		VSync:      gfx.VSync,
		Samples:    gfx.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.GetSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.ClearColor(),
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.scene, err = scene.New(scene.Config{Width: width, Height: height}, f.Sway, f.Shading)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	if err := v.scene.LoadField(f.Mesh); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to load field: %w", err)
	}
	v.log.Info("field uploaded", zap.Bool("host_sway", v.scene.HostSway()))

	v.input = input.New()
	v.updater = frame.NewUpdater(frame.NewSystemClock(), f.Rig,
		frame.WithTimeScale(cfg.Wind.TimeScale),
		frame.WithLogger(logger.Named("frame")),
	)

	return v, nil
}

// Run starts the main loop. It returns when the window is closed, ESC is
// pressed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		if err := ctx.Err(); err != nil {
			break
		}

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents(v.input.Events())

		// 2. Publish frame parameters
		params := v.updater.Update()

		// 3. Render
		v.renderer.Begin()
		if err := v.scene.Render(ctx, params); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.renderer.End()

		if v.screenshotRequested {
			v.screenshotRequested = false
			if err := v.captureScreenshot(ctx, params); err != nil {
				v.log.Warn("screenshot failed", zap.Error(err))
			}
		}

		// 4. Present (swap buffers)
		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			v.window.SetTitle(fmt.Sprintf("meadow - %.0f fps", fps))
			v.log.Debug("fps", zap.Float64("fps", fps), zap.Float32("time", params.Time))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(event.Width, event.Height)
			v.scene.Resize(event.Width, event.Height)
		case input.EventMouseMove:
			if v.input.Dragging() {
				v.scene.Camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventMouseWheel:
			v.scene.Camera.HandleZoom(event.Wheel)
		}
	}

	if v.input.IsKeyPressed(sdl.SCANCODE_P) {
		v.screenshotRequested = true
	}
	if v.input.IsKeyPressed(sdl.SCANCODE_F) {
		v.scene.FitCamera()
	}
}

// captureScreenshot renders the current frame offscreen and writes it as a
// PNG into the output directory.
func (v *Viewer) captureScreenshot(ctx context.Context, params frame.Params) error {
	width, height := v.renderer.Size()
	fb, err := framebuffer.New(int32(width), int32(height))
	if err != nil {
		return err
	}
	defer fb.Destroy()

	if err := fb.Render(v.config.ClearColor(), func() error {
		return v.scene.Render(ctx, params)
	}); err != nil {
		return err
	}

	fw, fh := fb.Size()
	img, err := export.ImageFromPixels(fb.ReadPixels(), int(fw), int(fh))
	if err != nil {
		return err
	}
	om, err := export.NewOutputManager(v.config.Output.Dir)
	if err != nil {
		return err
	}
	path, err := om.WriteScreenshot(img, time.Now())
	if err != nil {
		return err
	}
	v.log.Info("screenshot saved", zap.String("path", path))
	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
