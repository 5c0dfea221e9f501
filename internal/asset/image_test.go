package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 40, A: 255})
		}
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	src := testImage(30, 20)
	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
		format string
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, src) }, "png"},
		{"jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) }, "jpeg"},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }, "bmp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatal(err)
			}
			img, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if img.Format != tt.format {
				t.Errorf("Format = %q, want %q", img.Format, tt.format)
			}
			if img.Width != 30 || img.Height != 20 {
				t.Errorf("size = %dx%d, want 30x20", img.Width, img.Height)
			}
			if !strings.HasPrefix(img.ID, "asset_") {
				t.Errorf("ID = %q, want asset_ prefix", img.ID)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage(8, 4)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if img.Width != 8 || img.Height != 4 || img.Pixels == nil {
		t.Errorf("unexpected image %+v", img)
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(junk); !errors.Is(err, image.ErrFormat) {
		t.Errorf("junk file err = %v, want image.ErrFormat", err)
	}
}
