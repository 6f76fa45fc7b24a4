package game

import (
	"fmt"
	"math"

	"galacticimpact/raster"
)

// Intro logo dimensions
const (
	logoRadius      = 140
	logoRingX       = 200
	logoRingY       = 36
	logoShipDelayMS = 1000 // ship appears after the planet
	logoBobPeriod   = 0.005
	logoBobHeight   = 5
	logoFlameBlink  = 100 // ms per flame frame
)

// drawIntro paints the animated logo. ticks is the time spent on the intro.
func (c *Compositor) drawIntro(dst *raster.Surface, ticks int) {
	dst.Clear(colorBackground)

	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2
	ms := ticks * 1000 / c.config.TPS

	raster.Circle(dst, cx, cy, logoRadius, colorFrame)
	raster.Ellipse(dst, cx, cy, logoRingX, logoRingY, colorAsteroidFill)

	if ms >= logoShipDelayMS {
		bob := int(math.Sin(float64(ms)*logoBobPeriod) * logoBobHeight)
		drawLogoShip(dst, raster.Point{X: cx, Y: cy + bob}, (ms/logoFlameBlink)%2 == 0)
	}

	drawText(dst, "GALACTIC IMPACT", colorTitle, cx, h-40, true)
}

// drawLogoShip draws the large filled ship of the logo centered at p
func drawLogoShip(dst *raster.Surface, p raster.Point, flame bool) {
	at := func(pts ...raster.Point) []raster.Point {
		for i := range pts {
			pts[i] = pts[i].Add(p)
		}
		return pts
	}

	body := at(raster.Point{X: 0, Y: -60}, raster.Point{X: 35, Y: 40}, raster.Point{X: -35, Y: 40})
	leftWing := at(raster.Point{X: -35, Y: 0}, raster.Point{X: -70, Y: 40}, raster.Point{X: -35, Y: 40})
	rightWing := at(raster.Point{X: 35, Y: 0}, raster.Point{X: 70, Y: 40}, raster.Point{X: 35, Y: 40})

	raster.FillPolygon(dst, body, raster.Solid(colorFrame))
	raster.FillPolygon(dst, leftWing, raster.Solid(colorFrame))
	raster.FillPolygon(dst, rightWing, raster.Solid(colorFrame))

	// Cockpit
	dst.FillRect(raster.Rect{Left: p.X - 10, Top: p.Y - 20, Width: 20, Height: 30}, colorBackground)

	if flame {
		fire := at(raster.Point{X: -15, Y: 40}, raster.Point{X: 0, Y: 70}, raster.Point{X: 15, Y: 40})
		raster.FillPolygon(dst, fire, raster.Solid(colorShot))
	}
	raster.Polyline(dst, body, colorBackground)
}

var instructionLines = []string{
	"Move the ship:",
	"LEFT / RIGHT arrows",
	"",
	"Fire:",
	"SPACE",
	"",
	"F1 toggles the zoom view, ESC quits",
}

func (c *Compositor) drawInstructions(dst *raster.Surface) {
	dst.Clear(colorBackground)
	cx := dst.Width() / 2

	drawText(dst, "INSTRUCTIONS", colorTitle, cx, 80, true)
	for i, line := range instructionLines {
		drawText(dst, line, colorTitle, cx, 150+i*30, true)
	}
	drawText(dst, "Press ENTER to continue", colorPrompt, cx, dst.Height()-60, true)
}

func (c *Compositor) drawMenu(dst *raster.Surface, s *State) {
	dst.Clear(colorBackground)
	cx := dst.Width() / 2

	drawText(dst, "GALACTIC IMPACT", colorTitle, cx, 100, true)
	drawText(dst, "Press any key to start", colorPrompt, cx, 200, true)
	c.drawShip(dst, s.Ship)
}

func (c *Compositor) drawGameOver(dst *raster.Surface, s *State) {
	dst.Clear(colorBackground)
	cx, cy := dst.Width()/2, dst.Height()/2

	drawText(dst, "GAME OVER", colorGameOver, cx, cy-30, true)
	drawText(dst, fmt.Sprintf("SCORE %d", s.Score), colorTitle, cx, cy, true)
	drawText(dst, "Press any key to exit", colorAsteroidFill, cx, cy+40, true)
}
