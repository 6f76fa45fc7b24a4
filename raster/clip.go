package raster

import "image/color"

// Outcode marks the sides of a clip window a point lies beyond
type Outcode uint8

const (
	OutLeft   Outcode = 1 << iota // x < window left
	OutRight                      // x > window right
	OutBottom                     // y > window bottom
	OutTop                        // y < window top
)

// window is the closed float extent of r's pixels
func window(r Rect) (xmin, ymin, xmax, ymax float64) {
	return float64(r.Left), float64(r.Top), float64(r.Right() - 1), float64(r.Bottom() - 1)
}

// ComputeOutcode classifies (x, y) against r
func ComputeOutcode(x, y float64, r Rect) Outcode {
	xmin, ymin, xmax, ymax := window(r)
	var code Outcode
	if x < xmin {
		code |= OutLeft
	} else if x > xmax {
		code |= OutRight
	}
	if y < ymin {
		code |= OutTop
	} else if y > ymax {
		code |= OutBottom
	}
	return code
}

// ClipLine clips the segment (x0, y0)-(x1, y1) to r with Cohen–Sutherland.
// ok is false when no part of the segment lies inside r.
func ClipLine(x0, y0, x1, y1 float64, r Rect) (cx0, cy0, cx1, cy1 float64, ok bool) {
	xmin, ymin, xmax, ymax := window(r)
	code0 := ComputeOutcode(x0, y0, r)
	code1 := ComputeOutcode(x1, y1, r)

	for {
		if code0|code1 == 0 {
			return x0, y0, x1, y1, true
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}

		out := code0
		if out == 0 {
			out = code1
		}

		var x, y float64
		switch {
		case out&OutTop != 0:
			x = x0 + (x1-x0)*(ymin-y0)/(y1-y0)
			y = ymin
		case out&OutBottom != 0:
			x = x0 + (x1-x0)*(ymax-y0)/(y1-y0)
			y = ymax
		case out&OutRight != 0:
			y = y0 + (y1-y0)*(xmax-x0)/(x1-x0)
			x = xmax
		case out&OutLeft != 0:
			y = y0 + (y1-y0)*(xmin-x0)/(x1-x0)
			x = xmin
		}

		if out == code0 {
			x0, y0 = x, y
			code0 = ComputeOutcode(x0, y0, r)
		} else {
			x1, y1 = x, y
			code1 = ComputeOutcode(x1, y1, r)
		}
	}
}

// ClippedLine draws the part of the segment inside r
func ClippedLine(dst *Surface, x0, y0, x1, y1 float64, r Rect, clr color.RGBA) {
	cx0, cy0, cx1, cy1, ok := ClipLine(x0, y0, x1, y1, r)
	if !ok {
		return
	}
	Line(dst, int(cx0), int(cy0), int(cx1), int(cy1), clr)
}
