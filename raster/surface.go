// Package raster implements a small software rasterizer: a pixel surface and
// the scan-conversion primitives drawn onto it.
package raster

import (
	"image"
	"image/color"
)

// Point is an integer 2D coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned region of the surface
type Rect struct {
	Left, Top     int
	Width, Height int
}

// Right returns the x coordinate one past the last column
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the y coordinate one past the last row
func (r Rect) Bottom() int { return r.Top + r.Height }

// CenterX returns the horizontal center of the rect
func (r Rect) CenterX() int { return r.Left + r.Width/2 }

// Valid reports whether the rect has a positive area
func (r Rect) Valid() bool { return r.Width > 0 && r.Height > 0 }

// Contains reports whether (x, y) lies inside the rect's pixel extent
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Surface is an addressable pixel buffer. All writes go through SetPixel,
// which silently drops anything outside the buffer.
type Surface struct {
	img *image.RGBA
	w   int
	h   int
}

// NewSurface creates a cleared surface of the given size
func NewSurface(width, height int) *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		w:   width,
		h:   height,
	}
}

// Width returns the surface width in pixels
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in pixels
func (s *Surface) Height() int { return s.h }

// InBounds reports whether (x, y) addresses a pixel of the surface
func (s *Surface) InBounds(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// SetPixel writes clr at (x, y). Out-of-bounds writes are ignored.
func (s *Surface) SetPixel(x, y int, clr color.RGBA) {
	if !s.InBounds(x, y) {
		return
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	p[0] = clr.R
	p[1] = clr.G
	p[2] = clr.B
	p[3] = clr.A
}

// Pixel returns the color at (x, y), or the zero color out of bounds
func (s *Surface) Pixel(x, y int) color.RGBA {
	if !s.InBounds(x, y) {
		return color.RGBA{}
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Clear paints every pixel with clr
func (s *Surface) Clear(clr color.RGBA) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.SetPixel(x, y, clr)
		}
	}
}

// FillRect paints the pixels of r
func (s *Surface) FillRect(r Rect, clr color.RGBA) {
	for y := r.Top; y < r.Bottom(); y++ {
		for x := r.Left; x < r.Right(); x++ {
			s.SetPixel(x, y, clr)
		}
	}
}

// Frame draws the outline of r with both edges inclusive, so the right
// column sits at r.Right() and the bottom row at r.Bottom().
func (s *Surface) Frame(r Rect, clr color.RGBA) {
	for x := r.Left; x <= r.Right(); x++ {
		s.SetPixel(x, r.Top, clr)
		s.SetPixel(x, r.Bottom(), clr)
	}
	for y := r.Top; y <= r.Bottom(); y++ {
		s.SetPixel(r.Left, y, clr)
		s.SetPixel(r.Right(), y, clr)
	}
}

// Pix returns the backing RGBA bytes for presentation. Callers must treat
// the slice as read-only.
func (s *Surface) Pix() []byte {
	return s.img.Pix
}

// ColorModel implements image.Image
func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// At implements image.Image
func (s *Surface) At(x, y int) color.Color { return s.Pixel(x, y) }

// Set implements draw.Image by routing through SetPixel
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}
