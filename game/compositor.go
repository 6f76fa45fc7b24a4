package game

import (
	"fmt"
	"image/color"
	"math"

	"galacticimpact/raster"
)

// Palette
var (
	colorBackground      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorFrame           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorShip            = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	colorShipShade       = color.RGBA{R: 40, G: 80, B: 160, A: 255}
	colorShipOutline     = color.RGBA{R: 170, G: 215, B: 255, A: 255}
	colorShot            = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorAsteroidOutline = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorAsteroidFill    = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	colorTitle           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPrompt          = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorGameOver        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// asteroidSegments is the number of chords approximating an asteroid that
// crosses the edge of the zoom inset
const asteroidSegments = 24

// Compositor paints the play field from the simulation state
type Compositor struct {
	config Config
	zoom   *ZoomView

	// ShowZoom enables the magnified inset around the ship
	ShowZoom bool
}

// NewCompositor creates a compositor with the zoom inset enabled
func NewCompositor(config Config) *Compositor {
	return &Compositor{
		config:   config,
		zoom:     NewZoomView(config.ZoomViewport, config.Zoom),
		ShowZoom: true,
	}
}

// Zoom returns the view used for the inset
func (c *Compositor) Zoom() *ZoomView { return c.zoom }

// Compose redraws the whole frame for s
func (c *Compositor) Compose(dst *raster.Surface, s *State) {
	dst.Clear(colorBackground)
	dst.Frame(c.config.Viewport, colorFrame)

	c.drawShip(dst, s.Ship)
	c.drawShots(dst, s.Shots)
	for _, a := range s.Asteroids {
		c.drawAsteroid(dst, a)
	}

	if c.ShowZoom {
		c.drawZoom(dst, s)
	}

	drawText(dst, fmt.Sprintf("SCORE %d", s.Score), colorTitle, c.config.Viewport.Left, c.config.Viewport.Top-20, false)
}

// drawShip outlines the ship and seed-fills it from its center
func (c *Compositor) drawShip(dst *raster.Surface, ship Ship) {
	raster.Polyline(dst, ship.Vertices(), colorShip)
	raster.SeedFill(dst, ship.Pos.X, ship.Pos.Y, colorBackground, colorShip)
}

func (c *Compositor) drawShots(dst *raster.Surface, shots []Shot) {
	for _, s := range shots {
		raster.Line(dst, s.Pos.X, s.Pos.Y, s.Pos.X, s.Pos.Y-c.config.ShotLength, colorShot)
	}
}

// drawAsteroid outlines the asteroid and seed-fills it from its center
func (c *Compositor) drawAsteroid(dst *raster.Surface, a Asteroid) {
	raster.Circle(dst, a.Pos.X, a.Pos.Y, a.Radius, colorAsteroidOutline)
	raster.SeedFill(dst, a.Pos.X, a.Pos.Y, colorBackground, colorAsteroidFill)
}

// drawZoom redraws the neighbourhood of the ship magnified inside the inset.
// Everything is remapped through the zoom view and clipped to the inset.
func (c *Compositor) drawZoom(dst *raster.Surface, s *State) {
	z := c.zoom
	z.Follow(s.Ship.Pos)
	inset := z.Screen

	dst.FillRect(inset, colorBackground)
	// The border sits just outside the clip window and closes off any
	// asteroid cut by the inset edge.
	dst.Frame(raster.Rect{Left: inset.Left - 1, Top: inset.Top - 1, Width: inset.Width + 1, Height: inset.Height + 1}, colorFrame)

	minX, minY, maxX, maxY := z.WorldBounds()
	for _, a := range s.Asteroids {
		r := float64(a.Radius)
		x, y := float64(a.Pos.X), float64(a.Pos.Y)
		if x+r < minX || x-r > maxX || y+r < minY || y-r > maxY {
			continue
		}
		c.drawZoomAsteroid(dst, a)
	}
	for _, shot := range s.Shots {
		x0, y0 := z.WorldToScreen(float64(shot.Pos.X), float64(shot.Pos.Y))
		x1, y1 := z.WorldToScreen(float64(shot.Pos.X), float64(shot.Pos.Y-c.config.ShotLength))
		raster.ClippedLine(dst, x0, y0, x1, y1, inset, colorShot)
	}
	c.drawZoomShip(dst, s.Ship)
}

func (c *Compositor) drawZoomAsteroid(dst *raster.Surface, a Asteroid) {
	z := c.zoom
	inset := z.Screen
	cx, cy := z.WorldToScreen(float64(a.Pos.X), float64(a.Pos.Y))
	r := float64(a.Radius) * z.Zoom

	icx, icy, ir := int(math.Floor(cx)), int(math.Floor(cy)), int(r)
	if inset.Contains(icx-ir, icy-ir) && inset.Contains(icx+ir, icy+ir) {
		raster.Ellipse(dst, icx, icy, ir, ir, colorAsteroidOutline)
	} else {
		var xs, ys [asteroidSegments]float64
		for i := range xs {
			angle := 2 * math.Pi * float64(i) / asteroidSegments
			xs[i] = cx + r*math.Cos(angle)
			ys[i] = cy + r*math.Sin(angle)
		}
		for i := range xs {
			j := (i + 1) % asteroidSegments
			raster.ClippedLine(dst, xs[i], ys[i], xs[j], ys[j], inset, colorAsteroidOutline)
		}
	}

	// A seed outside the inset, or one sitting on an outline, would
	// flood the wrong region.
	if !z.Contains(cx, cy) || dst.Pixel(icx, icy) == colorAsteroidOutline {
		return
	}
	raster.BoundaryFill(dst, icx, icy, colorAsteroidFill, colorAsteroidOutline)
}

// drawZoomShip scanline-fills the magnified ship with a checkerboard and
// outlines it with clipped lines
func (c *Compositor) drawZoomShip(dst *raster.Surface, ship Ship) {
	z := c.zoom
	inset := z.Screen
	world := ship.Vertices()

	xs := make([]float64, len(world))
	ys := make([]float64, len(world))
	pts := make([]raster.Point, len(world))
	for i, p := range world {
		xs[i], ys[i] = z.WorldToScreen(float64(p.X), float64(p.Y))
		pts[i] = raster.Point{X: int(math.Floor(xs[i])), Y: int(math.Floor(ys[i]))}
	}

	raster.FillPolygonIn(dst, pts, inset, raster.Checker(colorShip, colorShipShade))
	for i := range xs {
		j := (i + 1) % len(xs)
		raster.ClippedLine(dst, xs[i], ys[i], xs[j], ys[j], inset, colorShipOutline)
	}
}
