package game

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"galacticimpact/raster"
)

// textFace is the bitmap face used for every on-screen string
var textFace font.Face = basicfont.Face7x13

// drawText writes s onto dst. With center set, (x, y) is the middle of the
// text box; otherwise it is the top-left corner.
func drawText(dst *raster.Surface, s string, clr color.RGBA, x, y int, center bool) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: textFace,
	}
	m := textFace.Metrics()
	if center {
		x -= d.MeasureString(s).Round() / 2
		y -= (m.Ascent + m.Descent).Round() / 2
	}
	d.Dot = fixed.P(x, y+m.Ascent.Round())
	d.DrawString(s)
}
