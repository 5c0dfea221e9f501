package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/engine"
)

func TestWritePNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tree-200x325.png")
	if err := WritePNGFile(path, engine.NewEngine(document.AppleTree()), 200, 325); err != nil {
		t.Fatalf("WritePNGFile error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 || cfg.Height != 325 {
		t.Errorf("size = %dx%d, want 200x325", cfg.Width, cfg.Height)
	}
}

func TestWritePNGFileFailures(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.png")
	if err := WritePNGFile(path, engine.NewEngine(document.AppleTree()), 0, 10); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed render left a file behind")
	}

	if err := WritePNGFile(filepath.Join(dir, "none.png"), engine.NewEngine(nil), 10, 10); err == nil {
		t.Error("render without a scene succeeded")
	}
}
