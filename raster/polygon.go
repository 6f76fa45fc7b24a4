package raster

import (
	"image/color"
	"math"
	"sort"
)

// Shader picks the color of a filled pixel
type Shader func(x, y int) color.RGBA

// Solid shades every pixel with clr
func Solid(clr color.RGBA) Shader {
	return func(int, int) color.RGBA { return clr }
}

// Checker alternates a and b in a checkerboard, a on even (x+y)
func Checker(a, b color.RGBA) Shader {
	return func(x, y int) color.RGBA {
		if (x+y)&1 == 0 {
			return a
		}
		return b
	}
}

// FillPolygon fills the polygon through pts with the even-odd rule.
// The last vertex connects back to the first; fewer than three vertices
// draw nothing.
func FillPolygon(dst *Surface, pts []Point, shade Shader) {
	FillPolygonIn(dst, pts, Rect{Width: dst.Width(), Height: dst.Height()}, shade)
}

// FillPolygonIn is FillPolygon restricted to the pixels of clip
func FillPolygonIn(dst *Surface, pts []Point, clip Rect, shade Shader) {
	n := len(pts)
	if n < 3 || !clip.Valid() {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minY = max(minY, clip.Top)
	maxY = min(maxY, clip.Bottom())

	xs := make([]float64, 0, n)
	for y := minY; y < maxY; y++ {
		xs = xs[:0]
		for i := 0; i < n; i++ {
			a := pts[i]
			b := pts[(i+1)%n]
			// Half-open so a vertex shared by two edges is counted once.
			if (a.Y <= y && y < b.Y) || (b.Y <= y && y < a.Y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Ceil(xs[i])), clip.Left)
			x1 := min(int(math.Ceil(xs[i+1])), clip.Right())
			for x := x0; x < x1; x++ {
				dst.SetPixel(x, y, shade(x, y))
			}
		}
	}
}
