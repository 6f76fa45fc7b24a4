package raster

import "image/color"

// Line draws a one pixel wide segment from (x0, y0) to (x1, y1) using
// Bresenham's integer algorithm. The endpoints are put in canonical order
// first so swapping them yields the same pixels.
func Line(dst *Surface, x0, y0, x1, y1 int, clr color.RGBA) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		dst.SetPixel(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline draws the closed outline through pts
func Polyline(dst *Surface, pts []Point, clr color.RGBA) {
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		Line(dst, a.X, a.Y, b.X, b.Y, clr)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
