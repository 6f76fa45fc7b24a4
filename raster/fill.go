package raster

import "image/color"

// Flood paints fill over the 4-connected region reachable from (x, y) whose
// pixels satisfy shouldFill. Pending coordinates live on an explicit stack.
// Nothing happens when shouldFill accepts fill itself, since a repainted
// pixel would match again and the walk would never finish.
func Flood(dst *Surface, x, y int, fill color.RGBA, shouldFill func(color.RGBA) bool) {
	if shouldFill(fill) {
		return
	}
	stack := []Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !dst.InBounds(p.X, p.Y) {
			continue
		}
		if !shouldFill(dst.Pixel(p.X, p.Y)) {
			continue
		}
		dst.SetPixel(p.X, p.Y, fill)
		stack = append(stack,
			Point{X: p.X + 1, Y: p.Y},
			Point{X: p.X - 1, Y: p.Y},
			Point{X: p.X, Y: p.Y + 1},
			Point{X: p.X, Y: p.Y - 1},
		)
	}
}

// SeedFill replaces the connected run of target-colored pixels around
// (x, y) with replacement. The outline around the seed must be closed, or
// the fill spreads over every reachable target pixel.
func SeedFill(dst *Surface, x, y int, target, replacement color.RGBA) {
	if target == replacement {
		return
	}
	Flood(dst, x, y, replacement, func(c color.RGBA) bool {
		return c == target
	})
}

// BoundaryFill paints fill from (x, y) until it meets the boundary color,
// whatever the interior held before.
func BoundaryFill(dst *Surface, x, y int, fill, boundary color.RGBA) {
	Flood(dst, x, y, fill, func(c color.RGBA) bool {
		return c != boundary && c != fill
	})
}
