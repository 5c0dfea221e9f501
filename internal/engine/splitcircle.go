package engine

import "math"

// DefaultAngularStep is the outline sampling step in radians (about 126
// samples per full turn).
const DefaultAngularStep = 0.05

// Point is a 2D point in design space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RasterizeLeftRegion approximates the left region of a split circle as a
// polygon. The outline of the circle at (cx, cy) is sampled every step
// radians from 0 through 2π+step; a sample is kept when its projection onto
// the normal (cos angle, sin angle) falls below (2*leftRatio-1)*r, i.e. when it
// lies on the near side of the dividing chord. The caller closes the polygon.
//
// A non-positive step selects DefaultAngularStep.
func RasterizeLeftRegion(cx, cy, r, angle, leftRatio, step float64) []Point {
	if step <= 0 {
		step = DefaultAngularStep
	}

	nx, ny := math.Cos(angle), math.Sin(angle)
	threshold := (2*leftRatio - 1) * r

	limit := 2*math.Pi + step
	n := int(limit/step) + 1
	points := make([]Point, 0, n)
	for i := 0; ; i++ {
		a := float64(i) * step
		if a > limit {
			break
		}
		dx := math.Cos(a) * r
		dy := math.Sin(a) * r
		if dx*nx+dy*ny < threshold {
			points = append(points, Point{X: cx + dx, Y: cy + dy})
		}
	}
	return points
}
