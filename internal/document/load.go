package document

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed scene.schema.json
var sceneSchemaJSON []byte

var sceneSchema = gojsonschema.NewBytesLoader(sceneSchemaJSON)

// ValidationError lists every schema violation found in a scene document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid scene: " + strings.Join(e.Problems, "; ")
}

type palette struct {
	Left        *Color   `yaml:"left"`
	Right       *Color   `yaml:"right"`
	Border      *Color   `yaml:"border"`
	BorderWidth *float64 `yaml:"borderWidth"`
}

type splitCircleEntry struct {
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	Radius      float64  `yaml:"radius"`
	Angle       float64  `yaml:"angle"`
	LeftRatio   float64  `yaml:"leftRatio"`
	Left        *Color   `yaml:"left"`
	Right       *Color   `yaml:"right"`
	Border      *Color   `yaml:"border"`
	BorderWidth *float64 `yaml:"borderWidth"`
}

type sceneFile struct {
	Name         string             `yaml:"name"`
	Width        float64            `yaml:"width"`
	Height       float64            `yaml:"height"`
	Palette      palette            `yaml:"palette"`
	Rects        []Rect             `yaml:"rects"`
	HalfCircles  []HalfCircle       `yaml:"halfCircles"`
	SplitCircles []splitCircleEntry `yaml:"splitCircles"`
}

// LoadSceneFile reads and parses a YAML or JSON scene file.
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("parse scene file %s: %w", path, err)
	}
	return scene, nil
}

// ParseScene validates data against the scene schema and decodes it.
// Split circles without explicit colors take them from the palette, which in
// turn defaults to the built-in tree's colors.
func ParseScene(data []byte) (*Scene, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	result, err := gojsonschema.Validate(sceneSchema, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validate scene: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, e := range result.Errors() {
			verr.Problems = append(verr.Problems, e.String())
		}
		return nil, verr
	}

	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return f.scene(), nil
}

func (f *sceneFile) scene() *Scene {
	s := &Scene{
		Name:        f.Name,
		Width:       f.Width,
		Height:      f.Height,
		Rects:       f.Rects,
		HalfCircles: f.HalfCircles,
	}
	if s.Width == 0 {
		s.Width = DesignWidth
	}
	if s.Height == 0 {
		s.Height = DesignHeight
	}

	left := colorOr(f.Palette.Left, AppleRed)
	right := colorOr(f.Palette.Right, LeafGreen)
	border := colorOr(f.Palette.Border, TrunkBrown)
	width := floatOr(f.Palette.BorderWidth, splitBorderWidth)

	s.SplitCircles = make([]SplitCircle, len(f.SplitCircles))
	for i, e := range f.SplitCircles {
		s.SplitCircles[i] = SplitCircle{
			X:           e.X,
			Y:           e.Y,
			Radius:      e.Radius,
			Angle:       e.Angle,
			LeftRatio:   e.LeftRatio,
			Left:        colorOr(e.Left, left),
			Right:       colorOr(e.Right, right),
			Border:      colorOr(e.Border, border),
			BorderWidth: floatOr(e.BorderWidth, width),
		}
	}
	return s
}

func colorOr(c *Color, def Color) Color {
	if c == nil {
		return def
	}
	return *c
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
