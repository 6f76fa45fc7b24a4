package raster

import (
	"image/color"
	"math/rand"
	"testing"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	gray  = color.RGBA{160, 160, 160, 255}
	blue  = color.RGBA{80, 160, 255, 255}
)

func newTestSurface(w, h int) *Surface {
	s := NewSurface(w, h)
	s.Clear(black)
	return s
}

// painted collects every pixel of s that is not black
func painted(s *Surface) map[Point]color.RGBA {
	out := make(map[Point]color.RGBA)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.Pixel(x, y); c != black {
				out[Point{x, y}] = c
			}
		}
	}
	return out
}

func TestSurfaceBounds(t *testing.T) {
	s := newTestSurface(4, 3)

	s.SetPixel(3, 2, red)
	if got := s.Pixel(3, 2); got != red {
		t.Errorf("Pixel(3,2) = %v, want %v", got, red)
	}

	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		s.SetPixel(p.X, p.Y, white)
		if got := s.Pixel(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("Pixel(%d,%d) out of bounds = %v, want zero", p.X, p.Y, got)
		}
	}
	if n := len(painted(s)); n != 1 {
		t.Errorf("painted %d pixels, want 1", n)
	}
}

func TestSurfaceDrawImage(t *testing.T) {
	s := newTestSurface(2, 2)
	s.Set(1, 1, color.NRGBA{R: 255, A: 255})
	if got := s.Pixel(1, 1); got != red {
		t.Errorf("Set via draw.Image = %v, want %v", got, red)
	}
	s.Set(5, 5, color.White)
	if got := s.At(1, 1); got != red {
		t.Errorf("At(1,1) = %v, want %v", got, red)
	}
}

func TestSurfaceFrame(t *testing.T) {
	s := newTestSurface(20, 20)
	r := Rect{Left: 2, Top: 3, Width: 10, Height: 5}
	s.Frame(r, white)

	for _, p := range []Point{{2, 3}, {12, 3}, {2, 8}, {12, 8}, {7, 3}, {2, 5}} {
		if got := s.Pixel(p.X, p.Y); got != white {
			t.Errorf("frame pixel %v = %v, want white", p, got)
		}
	}
	if got := s.Pixel(7, 5); got != black {
		t.Errorf("frame interior = %v, want black", got)
	}
}

func TestLineSinglePixel(t *testing.T) {
	s := newTestSurface(10, 10)
	Line(s, 4, 5, 4, 5, red)

	px := painted(s)
	if len(px) != 1 || px[Point{4, 5}] != red {
		t.Errorf("degenerate line painted %v, want only (4,5)", px)
	}
}

func TestLineAxisAligned(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"horizontal", 1, 2, 8, 2, 8},
		{"vertical", 3, 9, 3, 0, 10},
		{"diagonal", 0, 0, 6, 6, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(10, 10)
			Line(s, tt.x0, tt.y0, tt.x1, tt.y1, white)
			px := painted(s)
			if len(px) != tt.want {
				t.Errorf("painted %d pixels, want %d", len(px), tt.want)
			}
			if _, ok := px[Point{tt.x0, tt.y0}]; !ok {
				t.Errorf("start (%d,%d) not painted", tt.x0, tt.y0)
			}
			if _, ok := px[Point{tt.x1, tt.y1}]; !ok {
				t.Errorf("end (%d,%d) not painted", tt.x1, tt.y1)
			}
		})
	}
}

func TestLineSymmetricUnderSwap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		x0, y0 := rng.Intn(40), rng.Intn(40)
		x1, y1 := rng.Intn(40), rng.Intn(40)

		a := newTestSurface(40, 40)
		b := newTestSurface(40, 40)
		Line(a, x0, y0, x1, y1, white)
		Line(b, x1, y1, x0, y0, white)

		pa, pb := painted(a), painted(b)
		if len(pa) != len(pb) {
			t.Fatalf("(%d,%d)-(%d,%d): %d pixels forward, %d reversed", x0, y0, x1, y1, len(pa), len(pb))
		}
		for p := range pa {
			if _, ok := pb[p]; !ok {
				t.Fatalf("(%d,%d)-(%d,%d): %v missing when reversed", x0, y0, x1, y1, p)
			}
		}
	}
}

func TestLineOffSurface(t *testing.T) {
	s := newTestSurface(10, 10)
	Line(s, -20, 5, 30, 5, white)
	if n := len(painted(s)); n != 10 {
		t.Errorf("painted %d pixels, want the 10 visible ones", n)
	}
}

func TestCircleOctantSymmetry(t *testing.T) {
	const c = 40
	for r := 0; r <= 35; r++ {
		s := newTestSurface(2*c+1, 2*c+1)
		Circle(s, c, c, r, white)
		px := painted(s)
		if len(px) == 0 {
			t.Fatalf("r=%d painted nothing", r)
		}
		for p := range px {
			dx, dy := p.X-c, p.Y-c
			mirrors := []Point{
				{dx, dy}, {dy, dx}, {-dx, dy}, {-dy, dx},
				{dx, -dy}, {dy, -dx}, {-dx, -dy}, {-dy, -dx},
			}
			for _, m := range mirrors {
				if _, ok := px[Point{c + m.X, c + m.Y}]; !ok {
					t.Fatalf("r=%d: (%d,%d) painted but reflection (%d,%d) is not", r, dx, dy, m.X, m.Y)
				}
			}
		}
	}
}

func TestCircleOutlineOnly(t *testing.T) {
	s := newTestSurface(41, 41)
	Circle(s, 20, 20, 15, white)

	if got := s.Pixel(20, 20); got != black {
		t.Errorf("center = %v, circle must not fill", got)
	}
	for _, p := range []Point{{35, 20}, {5, 20}, {20, 35}, {20, 5}} {
		if got := s.Pixel(p.X, p.Y); got != white {
			t.Errorf("extreme point %v = %v, want white", p, got)
		}
	}
}

func TestEllipseSymmetryAndExtremes(t *testing.T) {
	tests := []struct{ rx, ry int }{
		{1, 1}, {10, 4}, {4, 10}, {25, 7}, {15, 15}, {30, 2},
	}
	const c = 40
	for _, tt := range tests {
		s := newTestSurface(2*c+1, 2*c+1)
		Ellipse(s, c, c, tt.rx, tt.ry, white)
		px := painted(s)

		for _, p := range []Point{{c + tt.rx, c}, {c - tt.rx, c}, {c, c + tt.ry}, {c, c - tt.ry}} {
			if _, ok := px[p]; !ok {
				t.Errorf("rx=%d ry=%d: extreme point %v not painted", tt.rx, tt.ry, p)
			}
		}
		for p := range px {
			dx, dy := p.X-c, p.Y-c
			for _, m := range []Point{{-dx, dy}, {dx, -dy}, {-dx, -dy}} {
				if _, ok := px[Point{c + m.X, c + m.Y}]; !ok {
					t.Fatalf("rx=%d ry=%d: reflection (%d,%d) of (%d,%d) missing", tt.rx, tt.ry, m.X, m.Y, dx, dy)
				}
			}
			if dx > tt.rx || -dx > tt.rx || dy > tt.ry || -dy > tt.ry {
				t.Fatalf("rx=%d ry=%d: (%d,%d) outside bounding box", tt.rx, tt.ry, dx, dy)
			}
		}
		if got := s.Pixel(c, c); got != black {
			t.Errorf("rx=%d ry=%d: center painted, ellipse must not fill", tt.rx, tt.ry)
		}
	}
}

func TestEllipseClosedOutline(t *testing.T) {
	// A closed outline keeps a seed fill inside it.
	s := newTestSurface(81, 61)
	Ellipse(s, 40, 30, 30, 12, white)
	SeedFill(s, 40, 30, black, gray)

	if got := s.Pixel(0, 0); got != black {
		t.Errorf("fill leaked out of ellipse: corner = %v", got)
	}
	if got := s.Pixel(40, 30); got != gray {
		t.Errorf("center = %v, want gray", got)
	}
}

func TestEllipseDegenerate(t *testing.T) {
	s := newTestSurface(20, 20)
	Ellipse(s, 10, 10, 5, 0, white)
	if n := len(painted(s)); n != 11 {
		t.Errorf("ry=0 painted %d pixels, want a horizontal run of 11", n)
	}

	s = newTestSurface(20, 20)
	Ellipse(s, 10, 10, 0, 3, white)
	if n := len(painted(s)); n != 7 {
		t.Errorf("rx=0 painted %d pixels, want a vertical run of 7", n)
	}
}
