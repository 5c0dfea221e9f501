package engine

import (
	"encoding/json"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
// Zero-valued numeric fields are omitted and read back as zero.
type DrawCommand struct {
	Op           string  `json:"op"`                     // clear, image, rect, ellipse, polygon, arc, save, restore, translate, scale
	X            float64 `json:"x,omitempty"`            // position, or ellipse/arc center
	Y            float64 `json:"y,omitempty"`            //
	Width        float64 `json:"width,omitempty"`        // full width (diameter for ellipses and arcs)
	Height       float64 `json:"height,omitempty"`       //
	Start        float64 `json:"start,omitempty"`        // arc start angle
	End          float64 `json:"end,omitempty"`          // arc end angle
	Scale        float64 `json:"scale,omitempty"`        // uniform factor for "scale"
	Points       []Point `json:"points,omitempty"`       // closed polygon vertices
	Fill         string  `json:"fill,omitempty"`         // fill color
	Stroke       string  `json:"stroke,omitempty"`       // stroke color
	StrokeWidth  float64 `json:"strokeWidth,omitempty"`  // stroke width
	ImageAssetID string  `json:"imageAssetId,omitempty"` // asset ID for image lookup
	ImageURL     string  `json:"imageUrl,omitempty"`     // where the frontend can fetch the image
}

// Recorder is a Surface that records draw commands instead of painting.
type Recorder struct {
	commands []DrawCommand
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Commands returns the commands recorded so far in painter's order.
func (r *Recorder) Commands() []DrawCommand {
	return r.commands
}

func (r *Recorder) emit(cmd DrawCommand) {
	r.commands = append(r.commands, cmd)
}

func (r *Recorder) Clear(c document.Color) {
	r.emit(DrawCommand{Op: "clear", Fill: c.CSS()})
}

func (r *Recorder) DrawImage(img *asset.Image, x, y, w, h float64) {
	r.emit(DrawCommand{
		Op:           "image",
		X:            x,
		Y:            y,
		Width:        w,
		Height:       h,
		ImageAssetID: img.ID,
		ImageURL:     img.URL,
	})
}

func (r *Recorder) FillRect(x, y, w, h float64, fill, stroke document.Color, strokeWidth float64) {
	cmd := DrawCommand{Op: "rect", X: x, Y: y, Width: w, Height: h, Fill: fill.CSS()}
	setStroke(&cmd, stroke, strokeWidth)
	r.emit(cmd)
}

func (r *Recorder) FillEllipse(cx, cy, w, h float64, fill document.Color) {
	r.emit(DrawCommand{Op: "ellipse", X: cx, Y: cy, Width: w, Height: h, Fill: fill.CSS()})
}

func (r *Recorder) StrokeEllipse(cx, cy, w, h float64, stroke document.Color, strokeWidth float64) {
	cmd := DrawCommand{Op: "ellipse", X: cx, Y: cy, Width: w, Height: h}
	setStroke(&cmd, stroke, strokeWidth)
	r.emit(cmd)
}

func (r *Recorder) FillPolygon(points []Point, fill document.Color) {
	r.emit(DrawCommand{Op: "polygon", Points: points, Fill: fill.CSS()})
}

func (r *Recorder) Arc(cx, cy, w, h, start, end float64, fill, stroke document.Color, strokeWidth float64) {
	cmd := DrawCommand{Op: "arc", X: cx, Y: cy, Width: w, Height: h, Start: start, End: end, Fill: fill.CSS()}
	setStroke(&cmd, stroke, strokeWidth)
	r.emit(cmd)
}

func (r *Recorder) Push()                  { r.emit(DrawCommand{Op: "save"}) }
func (r *Recorder) Pop()                   { r.emit(DrawCommand{Op: "restore"}) }
func (r *Recorder) Translate(x, y float64) { r.emit(DrawCommand{Op: "translate", X: x, Y: y}) }
func (r *Recorder) Scale(s float64)        { r.emit(DrawCommand{Op: "scale", Scale: s}) }

func setStroke(cmd *DrawCommand, stroke document.Color, width float64) {
	if width <= 0 {
		return
	}
	cmd.Stroke = stroke.CSS()
	cmd.StrokeWidth = width
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
