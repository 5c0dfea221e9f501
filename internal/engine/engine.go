package engine

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
)

// ErrNoScene is returned when rendering before a scene has been set.
var ErrNoScene = errors.New("engine: no scene loaded")

// Engine owns the scene, the optional background image and the viewport
// computed for the current surface size.
type Engine struct {
	scene      *document.Scene
	background *asset.Image

	// Surface size and the fit derived from it
	surfaceW, surfaceH float64
	viewport           Viewport

	opts RenderOptions
}

// NewEngine creates an engine for scene. The surface starts at the scene's
// design size, so the viewport is the identity until the first Resize.
func NewEngine(scene *document.Scene) *Engine {
	e := &Engine{opts: DefaultRenderOptions()}
	if scene != nil {
		e.surfaceW, e.surfaceH = scene.Width, scene.Height
	}
	e.SetScene(scene)
	return e
}

// --- Commands (host → engine) ---

// SetScene replaces the scene and refits the viewport to it.
func (e *Engine) SetScene(scene *document.Scene) {
	e.scene = scene
	e.refit()
}

// LoadScene parses a YAML or JSON scene document and makes it current.
func (e *Engine) LoadScene(data []byte) error {
	scene, err := document.ParseScene(data)
	if err != nil {
		return err
	}
	e.SetScene(scene)
	return nil
}

// SetBackground sets the background image. A nil image renders the flat
// fallback color instead.
func (e *Engine) SetBackground(img *asset.Image) {
	e.background = img
}

// SetAngularStep sets the split circle sampling step. Non-positive values
// restore the default.
func (e *Engine) SetAngularStep(step float64) {
	if step <= 0 {
		step = DefaultAngularStep
	}
	e.opts.AngularStep = step
}

// SetFallback sets the flat background color.
func (e *Engine) SetFallback(c document.Color) {
	e.opts.Fallback = c
}

// Resize records the new surface size and recomputes the viewport from
// scratch; nothing from the previous size carries over.
func (e *Engine) Resize(width, height float64) {
	e.surfaceW, e.surfaceH = width, height
	e.refit()
}

func (e *Engine) refit() {
	if e.scene == nil {
		e.viewport = Viewport{SurfaceWidth: e.surfaceW, SurfaceHeight: e.surfaceH}
		return
	}
	e.viewport = ComputeFit(e.scene.Width, e.scene.Height, e.surfaceW, e.surfaceH)
}

// --- Queries (engine → host) ---

// Scene returns the current scene, or nil.
func (e *Engine) Scene() *document.Scene {
	return e.scene
}

// Background returns the background image, or nil.
func (e *Engine) Background() *asset.Image {
	return e.background
}

// Viewport returns the viewport for the current surface size.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// RenderTo draws one frame onto s.
func (e *Engine) RenderTo(s Surface) error {
	if e.scene == nil {
		return ErrNoScene
	}
	RenderFrame(s, e.scene, e.viewport, e.background, e.opts)
	return nil
}

// Render records one frame as draw commands.
func (e *Engine) Render() ([]DrawCommand, error) {
	rec := NewRecorder()
	if err := e.RenderTo(rec); err != nil {
		return nil, err
	}
	return rec.Commands(), nil
}

// RenderJSON records one frame and returns it as JSON, or "[]" without a scene.
func (e *Engine) RenderJSON() string {
	commands, err := e.Render()
	if err != nil {
		return "[]"
	}
	result, err := DrawCommandsToJSON(commands)
	if err != nil {
		slog.Debug("encode draw commands", "error", err)
		return "[]"
	}
	return result
}

// GetScene returns the current scene as JSON.
func (e *Engine) GetScene() string {
	if e.scene == nil {
		return "{}"
	}
	data, _ := json.Marshal(e.scene)
	return string(data)
}

// GetViewport returns the current viewport as JSON.
func (e *Engine) GetViewport() string {
	data, _ := json.Marshal(e.viewport)
	return string(data)
}
