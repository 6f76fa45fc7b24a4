package raster

import "math"

// snapEpsilon absorbs the rounding noise of sin/cos at exact multiples of 90°
const snapEpsilon = 1e-9

// Rotate turns p about the origin by degrees and truncates the result to
// integers. Shapes are rotated in local space before being translated.
func Rotate(p Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	sinA, cosA := math.Sincos(rad)
	x := float64(p.X)*cosA - float64(p.Y)*sinA
	y := float64(p.X)*sinA + float64(p.Y)*cosA
	return Point{X: truncate(x), Y: truncate(y)}
}

// Transform rotates every local vertex and moves it to origin
func Transform(model []Point, degrees float64, origin Point) []Point {
	out := make([]Point, len(model))
	for i, p := range model {
		out[i] = Rotate(p, degrees).Add(origin)
	}
	return out
}

func truncate(v float64) int {
	if r := math.Round(v); math.Abs(v-r) < snapEpsilon {
		return int(r)
	}
	return int(v)
}
