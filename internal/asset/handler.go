package asset

import (
	"log/slog"
	"net/http"
	"os"
)

// Handler serves the asset directory.
type Handler struct {
	dir string
}

// NewHandler creates a handler for files under dir.
func NewHandler(dir string) *Handler {
	if _, err := os.Stat(dir); err != nil {
		slog.Warn("asset dir unavailable", "error", err, "dir", dir)
	}
	return &Handler{dir: dir}
}

// Serve returns an http.Handler that serves asset files under /assets/.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.StripPrefix("/assets/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fs.ServeHTTP(w, r)
	}))
}

// URL returns the public path of a file in the asset directory.
func URL(name string) string {
	return "/assets/" + name
}
