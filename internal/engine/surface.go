package engine

import (
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
)

// Surface is an immediate-mode 2D drawing target with an affine state stack.
// Coordinates are interpreted through the current transform. A stroke width
// of zero or less draws no stroke. Ellipse and arc sizes are full diameters.
type Surface interface {
	Clear(c document.Color)
	DrawImage(img *asset.Image, x, y, w, h float64)
	FillRect(x, y, w, h float64, fill, stroke document.Color, strokeWidth float64)
	FillEllipse(cx, cy, w, h float64, fill document.Color)
	StrokeEllipse(cx, cy, w, h float64, stroke document.Color, strokeWidth float64)
	FillPolygon(points []Point, fill document.Color)
	// Arc fills and strokes the closed pie from start to end (radians,
	// clockwise in a y-down space).
	Arc(cx, cy, w, h, start, end float64, fill, stroke document.Color, strokeWidth float64)

	Push()
	Translate(x, y float64)
	Scale(s float64)
	Pop()
}
