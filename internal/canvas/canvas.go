// Package canvas rasterizes frames onto a gogpu/gg software context.
package canvas

import (
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/engine"
)

// arcStep is the sampling step for pie outlines, in radians.
const arcStep = 0.02

// Canvas implements engine.Surface over a gg.Context. Stroke widths are in
// user space and scale with the current transform.
type Canvas struct {
	dc    *gg.Context
	depth int // open Push calls
	err   error
}

var _ engine.Surface = (*Canvas)(nil)

// New creates a width x height canvas.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Err returns the first fill or stroke error, if any.
func (c *Canvas) Err() error { return c.err }

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG, or returns the first drawing error.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) setColor(col document.Color) {
	c.dc.SetRGB(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255)
}

func (c *Canvas) record(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) fill() {
	c.record(c.dc.Fill())
}

// fillAndStroke fills the current path, then strokes it when width > 0.
func (c *Canvas) fillAndStroke(fill, stroke document.Color, width float64) {
	if width <= 0 {
		c.fill()
		return
	}
	c.setColor(fill)
	c.record(c.dc.FillPreserve())
	c.setColor(stroke)
	c.dc.SetLineWidth(width)
	c.record(c.dc.Stroke())
}

func (c *Canvas) Clear(col document.Color) {
	c.dc.ClearWithColor(gg.RGB(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255))
}

// DrawImage resamples img into its destination rectangle with Catmull-Rom
// and composites the visible part over the canvas.
func (c *Canvas) DrawImage(img *asset.Image, x, y, w, h float64) {
	if img == nil || img.Pixels == nil {
		return
	}
	m := c.dc.GetTransform()
	p0 := m.TransformPoint(gg.Pt(x, y))
	p1 := m.TransformPoint(gg.Pt(x+w, y+h))
	dst := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	rect := image.Rect(
		int(math.Round(p0.X)),
		int(math.Round(p0.Y)),
		int(math.Round(p1.X)),
		int(math.Round(p1.Y)),
	)
	xdraw.CatmullRom.Scale(dst, rect, img.Pixels, img.Pixels.Bounds(), draw.Src, nil)

	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImage(gg.ImageBufFromImage(dst), 0, 0)
	c.dc.Pop()
}

func (c *Canvas) FillRect(x, y, w, h float64, fill, stroke document.Color, strokeWidth float64) {
	c.setColor(fill)
	c.dc.DrawRectangle(x, y, w, h)
	c.fillAndStroke(fill, stroke, strokeWidth)
}

func (c *Canvas) FillEllipse(cx, cy, w, h float64, fill document.Color) {
	c.setColor(fill)
	c.dc.DrawEllipse(cx, cy, w/2, h/2)
	c.fill()
}

func (c *Canvas) StrokeEllipse(cx, cy, w, h float64, stroke document.Color, strokeWidth float64) {
	if strokeWidth <= 0 {
		return
	}
	c.setColor(stroke)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawEllipse(cx, cy, w/2, h/2)
	c.record(c.dc.Stroke())
}

func (c *Canvas) FillPolygon(points []engine.Point, fill document.Color) {
	if len(points) < 3 {
		return
	}
	c.setColor(fill)
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.fill()
}

// Arc draws a closed pie through the center. gg's own DrawArc does not scale
// its radius by the transform, so the outline is sampled here instead.
func (c *Canvas) Arc(cx, cy, w, h, start, end float64, fill, stroke document.Color, strokeWidth float64) {
	rx, ry := w/2, h/2
	for end < start {
		end += 2 * math.Pi
	}
	c.setColor(fill)
	c.dc.MoveTo(cx, cy)
	n := max(1, int(math.Ceil((end-start)/arcStep)))
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		c.dc.LineTo(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	c.dc.ClosePath()
	c.fillAndStroke(fill, stroke, strokeWidth)
}

func (c *Canvas) Push() {
	c.dc.Push()
	c.depth++
}

// Pop restores the last pushed state. Unbalanced calls are ignored.
func (c *Canvas) Pop() {
	if c.depth == 0 {
		return
	}
	c.dc.Pop()
	c.depth--
}

func (c *Canvas) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

func (c *Canvas) Scale(s float64) {
	c.dc.Scale(s, s)
}
