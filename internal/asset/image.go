package asset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/typeid"
)

// Image is a decoded raster asset. Pixels may be nil when the pixels live
// elsewhere (a browser-side image element); Width and Height are always set.
type Image struct {
	ID     string
	URL    string
	Format string
	Width  int
	Height int
	Pixels image.Image
}

// Decode reads a PNG, JPEG, GIF, WebP, BMP or TIFF image from r.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	return &Image{
		ID:     typeid.NewAssetID(),
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: img,
	}, nil
}

// Load decodes the image file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}
