package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/engine"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/middleware"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/typeid"
)

// Settings configures every engine the handler builds.
type Settings struct {
	AngularStep float64
	Fallback    document.Color
	MaxSide     int // largest accepted width or height
}

// Handler serves frames of a fixed scene. Each request gets its own Engine;
// the scene and background are shared read-only.
type Handler struct {
	scene      *document.Scene
	background *asset.Image
	settings   Settings
}

func NewHandler(scene *document.Scene, background *asset.Image, settings Settings) *Handler {
	if settings.MaxSide <= 0 {
		settings.MaxSide = 4096
	}
	return &Handler{scene: scene, background: background, settings: settings}
}

func (h *Handler) newEngine() *engine.Engine {
	e := engine.NewEngine(h.scene)
	e.SetBackground(h.background)
	e.SetAngularStep(h.settings.AngularStep)
	e.SetFallback(h.settings.Fallback)
	return e
}

// surfaceSize reads width and height query parameters, defaulting to the
// scene's design size.
func (h *Handler) surfaceSize(r *http.Request) (int, int, error) {
	parse := func(name string, def float64) (int, error) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return int(def), nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", name)
		}
		if v <= 0 || v > h.settings.MaxSide {
			return 0, fmt.Errorf("%s must be between 1 and %d", name, h.settings.MaxSide)
		}
		return v, nil
	}
	w, err := parse("width", h.scene.Width)
	if err != nil {
		return 0, 0, err
	}
	ht, err := parse("height", h.scene.Height)
	if err != nil {
		return 0, 0, err
	}
	return w, ht, nil
}

// PNG handles GET /export/png?width=&height=.
func (h *Handler) PNG(w http.ResponseWriter, r *http.Request) {
	width, height, err := h.surfaceSize(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := RenderPNG(&buf, h.newEngine(), width, height); err != nil {
		slog.Error("render png", "error", err, "request_id", middleware.RequestIDFromContext(r.Context()))
		http.Error(w, "failed to render frame", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", typeid.NewSnapshotID()+".png"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Frame handles GET /api/frame?width=&height= and returns draw commands.
func (h *Handler) Frame(w http.ResponseWriter, r *http.Request) {
	width, height, err := h.surfaceSize(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e := h.newEngine()
	e.Resize(float64(width), float64(height))
	commands, err := e.Render()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	vp := e.Viewport()
	x0, y0, x1, y1 := vp.DesignBounds()
	writeJSON(w, http.StatusOK, map[string]any{
		"viewport":  vp,
		"transform": vp.Matrix().ToSlice(),
		"visible":   []float64{x0, y0, x1, y1},
		"commands":  commands,
	})
}

// Scene handles GET /api/scene.
func (h *Handler) Scene(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scene)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
