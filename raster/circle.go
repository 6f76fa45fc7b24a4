package raster

import "image/color"

// Circle draws the outline of a circle with the midpoint algorithm, plotting
// all eight octants per step. Filling is left to the caller.
func Circle(dst *Surface, cx, cy, r int, clr color.RGBA) {
	if r < 0 {
		return
	}
	x, y := 0, r
	d := 1 - r
	for x <= y {
		dst.SetPixel(cx+x, cy+y, clr)
		dst.SetPixel(cx+y, cy+x, clr)
		dst.SetPixel(cx-x, cy+y, clr)
		dst.SetPixel(cx-y, cy+x, clr)
		dst.SetPixel(cx+x, cy-y, clr)
		dst.SetPixel(cx+y, cy-x, clr)
		dst.SetPixel(cx-x, cy-y, clr)
		dst.SetPixel(cx-y, cy-x, clr)

		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// Ellipse draws the outline of an axis-aligned ellipse using the two-region
// midpoint algorithm. Decision variables are kept as integers scaled by 4.
func Ellipse(dst *Surface, cx, cy, rx, ry int, clr color.RGBA) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == 0 || ry == 0 {
		Line(dst, cx-rx, cy-ry, cx+rx, cy+ry, clr)
		return
	}

	plot := func(x, y int) {
		dst.SetPixel(cx+x, cy+y, clr)
		dst.SetPixel(cx-x, cy+y, clr)
		dst.SetPixel(cx+x, cy-y, clr)
		dst.SetPixel(cx-x, cy-y, clr)
	}

	rx2 := int64(rx) * int64(rx)
	ry2 := int64(ry) * int64(ry)
	x, y := int64(0), int64(ry)
	px := int64(0)    // 2*ry2*x
	py := 2 * rx2 * y // 2*rx2*y

	// Region 1: slope shallower than -1, step x every iteration.
	d1 := 4*ry2 - 4*rx2*int64(ry) + rx2
	for px < py {
		plot(int(x), int(y))
		x++
		px += 2 * ry2
		if d1 < 0 {
			d1 += 4 * (px + ry2)
		} else {
			y--
			py -= 2 * rx2
			d1 += 4 * (px - py + ry2)
		}
	}

	// Region 2: step y every iteration, seeded from where region 1 stopped.
	d2 := ry2*(2*x+1)*(2*x+1) + 4*rx2*(y-1)*(y-1) - 4*rx2*ry2
	for y >= 0 {
		plot(int(x), int(y))
		y--
		py -= 2 * rx2
		if d2 > 0 {
			d2 += 4 * (rx2 - py)
		} else {
			x++
			px += 2 * ry2
			d2 += 4 * (px - py + rx2)
		}
	}
}
