package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/canvas"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/engine"
)

// RenderPNG resizes eng to width x height, rasterizes one frame and writes
// it to w as PNG.
func RenderPNG(w io.Writer, eng *engine.Engine, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	eng.Resize(float64(width), float64(height))

	c := canvas.New(width, height)
	defer c.Close()
	if err := eng.RenderTo(c); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNGFile renders a frame into path, creating parent directories.
func WritePNGFile(path string, eng *engine.Engine, width, height int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := RenderPNG(f, eng, width, height); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
