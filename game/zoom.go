package game

import (
	"math"

	"galacticimpact/raster"
)

// ZoomView maps a small window of the world onto an inset of the screen
type ZoomView struct {
	X, Y   float64     // World position shown at the inset's center
	Zoom   float64     // Magnification
	Screen raster.Rect // Inset on the screen
}

// NewZoomView creates a zoom view drawing into screen
func NewZoomView(screen raster.Rect, zoom float64) *ZoomView {
	return &ZoomView{
		Zoom:   zoom,
		Screen: screen,
	}
}

// Follow centers the view on p, framed so the ship sits in the lower part
// of the inset and incoming asteroids stay visible
func (z *ZoomView) Follow(p raster.Point) {
	z.X = float64(p.X)
	z.Y = float64(p.Y) - float64(z.Screen.Height)/(4*z.Zoom)
}

// WorldToScreen converts world coordinates to screen coordinates
func (z *ZoomView) WorldToScreen(wx, wy float64) (float64, float64) {
	// Translate by view position
	sx := wx - z.X
	sy := wy - z.Y

	// Apply zoom
	sx *= z.Zoom
	sy *= z.Zoom

	// Translate to inset center
	sx += float64(z.Screen.Left) + float64(z.Screen.Width)/2
	sy += float64(z.Screen.Top) + float64(z.Screen.Height)/2

	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (z *ZoomView) ScreenToWorld(sx, sy float64) (float64, float64) {
	// Translate from inset center
	wx := sx - float64(z.Screen.Left) - float64(z.Screen.Width)/2
	wy := sy - float64(z.Screen.Top) - float64(z.Screen.Height)/2

	// Apply inverse zoom
	wx /= z.Zoom
	wy /= z.Zoom

	// Translate by view position
	wx += z.X
	wy += z.Y

	return wx, wy
}

// WorldBounds returns the world rectangle visible through the inset
func (z *ZoomView) WorldBounds() (minX, minY, maxX, maxY float64) {
	minX, minY = z.ScreenToWorld(float64(z.Screen.Left), float64(z.Screen.Top))
	maxX, maxY = z.ScreenToWorld(float64(z.Screen.Right()), float64(z.Screen.Bottom()))
	return minX, minY, maxX, maxY
}

// Contains reports whether a remapped point lands inside the inset
func (z *ZoomView) Contains(sx, sy float64) bool {
	return z.Screen.Contains(int(math.Floor(sx)), int(math.Floor(sy)))
}
