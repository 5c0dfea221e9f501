package document

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestShapesDrawOrder(t *testing.T) {
	s := AppleTree()
	shapes := s.Shapes()
	if len(shapes) != s.Len() {
		t.Fatalf("len(Shapes()) = %d, want %d", len(shapes), s.Len())
	}

	// Kinds must appear in contiguous runs: rect, splitCircle, halfCircle.
	want := []ShapeKind{ShapeKindRect, ShapeKindSplitCircle, ShapeKindHalfCircle}
	stage := 0
	for i, sh := range shapes {
		for stage < len(want) && sh.Kind != want[stage] {
			stage++
		}
		if stage == len(want) {
			t.Fatalf("shape %d has kind %q out of order", i, sh.Kind)
		}
	}

	if shapes[0].Rect != s.Rects[0] {
		t.Errorf("first shape = %+v, want first rect", shapes[0])
	}
	last := shapes[len(shapes)-1]
	if last.Kind != ShapeKindHalfCircle || last.HalfCircle != s.HalfCircles[len(s.HalfCircles)-1] {
		t.Errorf("last shape = %+v, want last half circle", last)
	}
}

func TestAppleTreeTables(t *testing.T) {
	s := AppleTree()
	if s.Width != DesignWidth || s.Height != DesignHeight {
		t.Errorf("design size = %vx%v, want %dx%d", s.Width, s.Height, DesignWidth, DesignHeight)
	}
	if got := len(s.Rects); got != 9 {
		t.Errorf("rects = %d, want 9", got)
	}
	if got := len(s.SplitCircles); got != 37 {
		t.Errorf("split circles = %d, want 37", got)
	}
	if got := len(s.HalfCircles); got != 6 {
		t.Errorf("half circles = %d, want 6", got)
	}
	for i, c := range s.SplitCircles {
		if c.Radius <= 0 {
			t.Errorf("split circle %d has radius %v", i, c.Radius)
		}
		if c.Left != AppleRed || c.Right != LeafGreen || c.Border != TrunkBrown || c.BorderWidth != 4 {
			t.Errorf("split circle %d has unexpected style %+v", i, c)
		}
	}
}

func TestAppleTreeReturnsIndependentCopies(t *testing.T) {
	a := AppleTree()
	a.Rects[0].Width = 1
	a.HalfCircles[0].Radius = 1

	b := AppleTree()
	if b.Rects[0].Width != 800 {
		t.Errorf("rect table mutated through a previous scene: width %v", b.Rects[0].Width)
	}
	if b.HalfCircles[0].Radius != 34 {
		t.Errorf("half circle table mutated through a previous scene: radius %v", b.HalfCircles[0].Radius)
	}
}

func TestColorFormats(t *testing.T) {
	c := RGB(251, 91, 99)
	if got := c.CSS(); got != "rgb(251, 91, 99)" {
		t.Errorf("CSS() = %q", got)
	}
	if got := c.Hex(); got != "#fb5b63" {
		t.Errorf("Hex() = %q", got)
	}
	parsed, err := ParseHex("#FB5B63")
	if err != nil || parsed != c {
		t.Errorf("ParseHex = %+v, %v; want %+v", parsed, err, c)
	}
	if _, err := ParseHex("#12345"); err == nil {
		t.Error("ParseHex accepted a 5-digit color")
	}
	if _, err := ParseHex("zzzzzz"); err == nil {
		t.Error("ParseHex accepted non-hex digits")
	}

	data, err := json.Marshal(c)
	if err != nil || string(data) != `"#fb5b63"` {
		t.Errorf("json.Marshal = %s, %v", data, err)
	}
}

func TestColorUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{"sequence", "[1, 2, 3]", RGB(1, 2, 3), false},
		{"hex", `"#0a0b0c"`, RGB(10, 11, 12), false},
		{"short sequence", "[1, 2]", Color{}, true},
		{"out of range", "[1, 2, 256]", Color{}, true},
		{"mapping", "{r: 1}", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && c != tt.want {
				t.Errorf("got %+v, want %+v", c, tt.want)
			}
		})
	}
}
