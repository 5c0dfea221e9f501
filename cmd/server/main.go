package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/config"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/export"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/logging"
	mw "github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logging.Init(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})

	scene, err := loadScene(cfg)
	if err != nil {
		slog.Error("load scene", "error", err, "file", cfg.SceneFile)
		os.Exit(1)
	}
	background := loadBackground(cfg)

	r := newRouter(cfg, scene, background)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "scene", scene.Name, "shapes", scene.Len())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func loadScene(cfg *config.Config) (*document.Scene, error) {
	if cfg.SceneFile == "" {
		return document.AppleTree(), nil
	}
	return document.LoadSceneFile(cfg.SceneFile)
}

// loadBackground returns nil when the image is unavailable; frames then use
// the fallback fill.
func loadBackground(cfg *config.Config) *asset.Image {
	path := cfg.BackgroundPath()
	if path == "" {
		return nil
	}
	img, err := asset.Load(path)
	if err != nil {
		slog.Debug("background unavailable, using fallback", "path", path, "error", err)
		return nil
	}
	if name, ok := assetName(cfg.AssetDir, path); ok {
		img.URL = asset.URL(name)
	}
	slog.Info("background loaded", "url", img.URL, "path", path, "asset_id", img.ID, "width", img.Width, "height", img.Height)
	return img
}

// assetName returns path relative to the asset directory, in URL form, when
// the file lives under it.
func assetName(dir, path string) (string, bool) {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func newRouter(cfg *config.Config, scene *document.Scene, background *asset.Image) *mux.Router {
	assetHandler := asset.NewHandler(cfg.AssetDir)
	exportHandler := export.NewHandler(scene, background, export.Settings{
		AngularStep: cfg.AngularStep,
		Fallback:    document.Gray(cfg.FallbackGray),
		MaxSide:     cfg.MaxSnapshotSide,
	})

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.PathPrefix("/assets/").Handler(assetHandler.Serve()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scene", exportHandler.Scene).Methods("GET", "OPTIONS")
	api.HandleFunc("/frame", exportHandler.Frame).Methods("GET", "OPTIONS")

	r.HandleFunc("/export/png", exportHandler.PNG).Methods("GET", "OPTIONS")

	// Web root with the wasm bundle
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.WebDir))).Methods("GET")

	return r
}
