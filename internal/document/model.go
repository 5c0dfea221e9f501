package document

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Design resolution the built-in tree is authored in.
const (
	DesignWidth  = 800
	DesignHeight = 1300
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Gray returns a color with all three channels set to v.
func Gray(v uint8) Color { return Color{R: v, G: v, B: v} }

// CSS formats the color as a Canvas2D style string.
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// UnmarshalYAML accepts either [r, g, b] or "#rrggbb".
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseHex(value.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var ch []int
		if err := value.Decode(&ch); err != nil {
			return fmt.Errorf("color channels: %w", err)
		}
		if len(ch) != 3 {
			return fmt.Errorf("line %d: color needs 3 channels, got %d", value.Line, len(ch))
		}
		for _, v := range ch {
			if v < 0 || v > 255 {
				return fmt.Errorf("line %d: color channel %d out of range", value.Line, v)
			}
		}
		*c = Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}
		return nil
	default:
		return fmt.Errorf("line %d: color must be a sequence or hex string", value.Line)
	}
}

// MarshalJSON writes the color as its hex string.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.Hex())), nil
}

type ShapeKind string

const (
	ShapeKindRect        ShapeKind = "rect"
	ShapeKindSplitCircle ShapeKind = "splitCircle"
	ShapeKindHalfCircle  ShapeKind = "halfCircle"
)

// Rect is a filled, bordered axis-aligned rectangle.
type Rect struct {
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	Width       float64 `yaml:"width" json:"width"`
	Height      float64 `yaml:"height" json:"height"`
	Fill        Color   `yaml:"fill" json:"fill"`
	Border      Color   `yaml:"border" json:"border"`
	BorderWidth float64 `yaml:"borderWidth" json:"borderWidth"`
}

// HalfCircle is always the upper semicircle of the circle at (X, Y),
// drawn as a closed pie from angle π to 2π.
type HalfCircle struct {
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	Radius      float64 `yaml:"radius" json:"radius"`
	Fill        Color   `yaml:"fill" json:"fill"`
	Border      Color   `yaml:"border" json:"border"`
	BorderWidth float64 `yaml:"borderWidth" json:"borderWidth"`
}

// SplitCircle is a circle divided by a chord into a left-colored and a
// right-colored region. Angle orients the chord's normal; LeftRatio moves
// the chord from the far edge (0) through the center (0.5) to the near
// edge (1).
type SplitCircle struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Radius      float64 `json:"radius"`
	Angle       float64 `json:"angle"`
	LeftRatio   float64 `json:"leftRatio"`
	Left        Color   `json:"left"`
	Right       Color   `json:"right"`
	Border      Color   `json:"border"`
	BorderWidth float64 `json:"borderWidth"`
}

// Shape is one drawable of a Scene. Exactly the payload matching Kind is set.
type Shape struct {
	Kind        ShapeKind
	Rect        Rect
	HalfCircle  HalfCircle
	SplitCircle SplitCircle
}

// Scene holds the three shape tables in design-space coordinates.
// A Scene is built once and treated as read-only afterwards.
type Scene struct {
	Name         string        `json:"name"`
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
	Rects        []Rect        `json:"rects"`
	SplitCircles []SplitCircle `json:"splitCircles"`
	HalfCircles  []HalfCircle  `json:"halfCircles"`
}

// Shapes returns every shape in painter's order: rectangles, then split
// circles, then half circles.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, 0, len(s.Rects)+len(s.SplitCircles)+len(s.HalfCircles))
	for _, r := range s.Rects {
		out = append(out, Shape{Kind: ShapeKindRect, Rect: r})
	}
	for _, c := range s.SplitCircles {
		out = append(out, Shape{Kind: ShapeKindSplitCircle, SplitCircle: c})
	}
	for _, h := range s.HalfCircles {
		out = append(out, Shape{Kind: ShapeKindHalfCircle, HalfCircle: h})
	}
	return out
}

// Len returns the number of shapes in the scene.
func (s *Scene) Len() int {
	return len(s.Rects) + len(s.SplitCircles) + len(s.HalfCircles)
}
