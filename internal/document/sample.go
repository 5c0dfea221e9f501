package document

import "math"

// Palette shared by every split circle of the built-in tree.
var (
	AppleRed   = RGB(251, 91, 99)
	LeafGreen  = RGB(109, 173, 123)
	Mustard    = RGB(227, 197, 99)
	TrunkBrown = RGB(62, 58, 47)
	Slate      = RGB(83, 86, 101)
	Coral      = RGB(232, 92, 90)
	Black      = RGB(0, 0, 0)
)

const splitBorderWidth = 4

// splitCircleTable rows: x, y, radius, dividing angle, left ratio.
var splitCircleTable = [][5]float64{
	{104, 4, 50, math.Pi, 0.7}, {74, 100, 50, 0, 0.6}, {84, 185, 35, math.Pi, 0.5}, {144, 220, 35, math.Pi * 3 / 2, 0.5}, {179, 275, 30, 0, 0.5},
	{170, 350, 45, 0, 0.6}, {175, 445, 50, math.Pi, 0.5}, {251, 483, 35, math.Pi * 3 / 2, 0.4}, {319, 497, 35, math.Pi / 2, 0.4},
	{384, 490, 30, math.Pi * 3 / 2, 0.5}, {495, 305, 20, math.Pi, 0.4}, {467, 340, 25, math.Pi / 2, 0.5}, {320, 303, 20, math.Pi, 0.5},
	{305, 340, 20, math.Pi / 2, 0.5}, {355, 340, 30, math.Pi * 3 / 2, 0.5}, {414, 380, 40, math.Pi, 0.5}, {414, 445, 25, 0, 0.5},
	{825, 97, 20, math.Pi, 0.5}, {798, 140, 30, math.Pi / 2, 0.4}, {727, 132, 40, math.Pi * 3 / 2, 0.5}, {666, 135, 20, math.Pi / 2, 0.5},
	{628, 160, 25, math.Pi, 0.3}, {639, 235, 50, 0, 0.5}, {635, 320, 35, math.Pi, 0.5}, {626, 400, 45, 0, 0.6},
	{594, 478, 40, math.Pi * 3 / 2, 0.4}, {524, 484, 30, math.Pi / 2, 0.6}, {454, 498, 40, math.Pi / 2, 0.4}, {425, 588, 55, math.Pi, 0.6},
	{400, 710, 70, 0, 0.6}, {414, 830, 50, math.Pi, 0.5}, {426, 910, 30, math.Pi, 0.7}, {387, 975, 45, 0, 0.8},
	{335, 1020, 25, math.Pi * 3 / 2, 0.5}, {265, 1020, 45, math.Pi / 2, 0.5}, {462, 1006, 35, math.Pi / 2, 0.7}, {542, 1020, 45, math.Pi * 3 / 2, 0.5},
}

var halfCircleTable = []HalfCircle{
	{X: 185, Y: 1138, Radius: 34, Fill: LeafGreen, Border: Coral},
	{X: 265, Y: 1138, Radius: 44, Fill: Mustard, Border: Slate},
	{X: 361, Y: 1138, Radius: 50, Fill: AppleRed, Border: Slate},
	{X: 454.5, Y: 1138, Radius: 42, Fill: AppleRed, Border: Slate},
	{X: 542, Y: 1138, Radius: 43, Fill: Mustard, Border: Slate},
	{X: 606.5, Y: 1138, Radius: 16, Fill: LeafGreen, Border: Slate},
}

// The base: ground strip, planter box and its colored panels.
var rectTable = []Rect{
	{X: 0, Y: 1040, Width: 800, Height: 120, Fill: LeafGreen, Border: TrunkBrown, BorderWidth: 5},
	{X: 146, Y: 1020, Width: 480, Height: 120, Fill: Mustard, Border: TrunkBrown, BorderWidth: 5},
	{X: 150, Y: 1023, Width: 90, Height: 115, Fill: Mustard, Border: Black},
	{X: 220, Y: 1023, Width: 90, Height: 115, Fill: AppleRed, Border: Black},
	{X: 310, Y: 1023, Width: 102, Height: 115, Fill: LeafGreen, Border: Black},
	{X: 412, Y: 1023, Width: 80, Height: 115, Fill: Mustard, Border: Black},
	{X: 497, Y: 1023, Width: 90, Height: 115, Fill: LeafGreen, Border: Black},
	{X: 0, Y: 1040, Width: 100, Height: 120, Fill: LeafGreen, Border: TrunkBrown, BorderWidth: 5},
	{X: 750, Y: 1040, Width: 100, Height: 120, Fill: LeafGreen, Border: TrunkBrown, BorderWidth: 5},
}

// AppleTree builds the built-in scene.
func AppleTree() *Scene {
	circles := make([]SplitCircle, len(splitCircleTable))
	for i, row := range splitCircleTable {
		circles[i] = SplitCircle{
			X:           row[0],
			Y:           row[1],
			Radius:      row[2],
			Angle:       row[3],
			LeftRatio:   row[4],
			Left:        AppleRed,
			Right:       LeafGreen,
			Border:      TrunkBrown,
			BorderWidth: splitBorderWidth,
		}
	}

	return &Scene{
		Name:         "Apple Tree",
		Width:        DesignWidth,
		Height:       DesignHeight,
		Rects:        append([]Rect(nil), rectTable...),
		SplitCircles: circles,
		HalfCircles:  append([]HalfCircle(nil), halfCircleTable...),
	}
}
