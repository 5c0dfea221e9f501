package engine

import (
	"math"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
)

// RenderOptions holds the per-frame rendering knobs.
type RenderOptions struct {
	Fallback    document.Color // flat background under (or instead of) the image
	AngularStep float64        // split circle outline sampling step
}

// DefaultRenderOptions returns gray 200 and DefaultAngularStep.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Fallback:    document.Gray(200),
		AngularStep: DefaultAngularStep,
	}
}

// RenderFrame draws one frame: the fallback fill, the cover-fit background
// when bg is non-nil, then every shape of the scene inside the viewport
// transform.
func RenderFrame(s Surface, scene *document.Scene, vp Viewport, bg *asset.Image, opts RenderOptions) {
	s.Clear(opts.Fallback)

	if bg != nil && bg.Width > 0 && bg.Height > 0 {
		x, y, w, h := CoverFit(float64(bg.Width), float64(bg.Height), vp.SurfaceWidth, vp.SurfaceHeight)
		s.DrawImage(bg, x, y, w, h)
	}

	s.Push()
	s.Translate(vp.OffsetX, vp.OffsetY)
	s.Scale(vp.Scale)
	for _, shape := range scene.Shapes() {
		drawShape(s, shape, vp, opts.AngularStep)
	}
	s.Pop()
}

func drawShape(s Surface, shape document.Shape, vp Viewport, step float64) {
	switch shape.Kind {
	case document.ShapeKindRect:
		r := shape.Rect
		s.FillRect(r.X, r.Y, r.Width, r.Height, r.Fill, r.Border, r.BorderWidth)

	case document.ShapeKindHalfCircle:
		h := shape.HalfCircle
		d := h.Radius * 2
		s.Arc(h.X, h.Y, d, d, math.Pi, 2*math.Pi, h.Fill, h.Border, h.BorderWidth)

	case document.ShapeKindSplitCircle:
		drawSplitCircle(s, shape.SplitCircle, vp, step)
	}
}

// drawSplitCircle paints the right color as a full disk, the left region on
// top of it, and finally the unfilled border. The border width is divided by
// the viewport scale so it keeps a constant thickness on the surface.
func drawSplitCircle(s Surface, c document.SplitCircle, vp Viewport, step float64) {
	d := c.Radius * 2
	s.FillEllipse(c.X, c.Y, d, d, c.Right)

	if left := RasterizeLeftRegion(c.X, c.Y, c.Radius, c.Angle, c.LeftRatio, step); len(left) >= 3 {
		s.FillPolygon(left, c.Left)
	}

	s.StrokeEllipse(c.X, c.Y, d, d, c.Border, c.BorderWidth/vp.Scale)
}
