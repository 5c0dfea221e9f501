//go:build js && wasm

package main

import (
	"math"
	"syscall/js"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/engine"
)

// jsSurface draws onto a CanvasRenderingContext2D. Image assets are looked
// up by URL among the HTMLImageElements the host has finished loading.
type jsSurface struct {
	ctx    js.Value
	images map[string]js.Value
}

func newJSSurface(ctx js.Value) *jsSurface {
	return &jsSurface{ctx: ctx, images: make(map[string]js.Value)}
}

func (s *jsSurface) stroke(c document.Color, width float64) {
	if width <= 0 {
		return
	}
	s.ctx.Set("strokeStyle", c.CSS())
	s.ctx.Set("lineWidth", width)
	s.ctx.Call("stroke")
}

func (s *jsSurface) Clear(c document.Color) {
	canvas := s.ctx.Get("canvas")
	s.ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)
	s.ctx.Set("fillStyle", c.CSS())
	s.ctx.Call("fillRect", 0, 0, canvas.Get("width").Int(), canvas.Get("height").Int())
}

func (s *jsSurface) DrawImage(img *asset.Image, x, y, w, h float64) {
	el, ok := s.images[img.URL]
	if !ok {
		return
	}
	s.ctx.Call("drawImage", el, x, y, w, h)
}

func (s *jsSurface) FillRect(x, y, w, h float64, fill, stroke document.Color, strokeWidth float64) {
	s.ctx.Call("beginPath")
	s.ctx.Call("rect", x, y, w, h)
	s.ctx.Set("fillStyle", fill.CSS())
	s.ctx.Call("fill")
	s.stroke(stroke, strokeWidth)
}

func (s *jsSurface) ellipsePath(cx, cy, w, h float64) {
	s.ctx.Call("beginPath")
	s.ctx.Call("ellipse", cx, cy, w/2, h/2, 0, 0, 2*math.Pi)
}

func (s *jsSurface) FillEllipse(cx, cy, w, h float64, fill document.Color) {
	s.ellipsePath(cx, cy, w, h)
	s.ctx.Set("fillStyle", fill.CSS())
	s.ctx.Call("fill")
}

func (s *jsSurface) StrokeEllipse(cx, cy, w, h float64, stroke document.Color, strokeWidth float64) {
	s.ellipsePath(cx, cy, w, h)
	s.stroke(stroke, strokeWidth)
}

func (s *jsSurface) FillPolygon(points []engine.Point, fill document.Color) {
	if len(points) < 3 {
		return
	}
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.ctx.Call("lineTo", p.X, p.Y)
	}
	s.ctx.Call("closePath")
	s.ctx.Set("fillStyle", fill.CSS())
	s.ctx.Call("fill")
}

func (s *jsSurface) Arc(cx, cy, w, h, start, end float64, fill, stroke document.Color, strokeWidth float64) {
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", cx, cy)
	s.ctx.Call("ellipse", cx, cy, w/2, h/2, 0, start, end)
	s.ctx.Call("closePath")
	s.ctx.Set("fillStyle", fill.CSS())
	s.ctx.Call("fill")
	s.stroke(stroke, strokeWidth)
}

func (s *jsSurface) Push()                  { s.ctx.Call("save") }
func (s *jsSurface) Pop()                   { s.ctx.Call("restore") }
func (s *jsSurface) Translate(x, y float64) { s.ctx.Call("translate", x, y) }
func (s *jsSurface) Scale(f float64)        { s.ctx.Call("scale", f, f) }
