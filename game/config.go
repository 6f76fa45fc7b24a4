package game

import (
	"errors"
	"fmt"

	"galacticimpact/raster"
)

// ErrInvalidConfig is returned when a Config cannot drive a game
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// TPS is the fixed simulation rate in ticks per second
	TPS int

	// Viewport is the play field inside the screen
	Viewport raster.Rect

	// ZoomViewport is the inset where the area around the ship is redrawn magnified
	ZoomViewport raster.Rect

	// Zoom is the magnification of the inset
	Zoom float64

	// ShipSpeed is the horizontal ship movement per tick while a direction is held
	ShipSpeed int

	// ShipMargin keeps the ship this far from the viewport's side edges
	ShipMargin int

	// ShipOffsetY places the ship this far above the viewport's bottom edge
	ShipOffsetY int

	// ShipCollisionRadius is added to an asteroid's radius for ship hits
	ShipCollisionRadius float64

	// ShotSpeed is the upward shot movement per tick
	ShotSpeed int

	// ShotOffsetY is how far above the ship's position a new shot appears
	ShotOffsetY int

	// ShotLength is the drawn length of a shot in pixels
	ShotLength int

	// AsteroidSpeed is the downward asteroid movement per tick
	AsteroidSpeed int

	// AsteroidRadius is the radius of every asteroid
	AsteroidRadius int

	// SpawnInterval is the number of ticks the spawn counter must exceed
	SpawnInterval int

	// ShotScore is awarded for each asteroid destroyed by a shot
	ShotScore int

	// IntroTicks is how long the intro logo stays up
	IntroTicks int

	// Seed seeds asteroid placement
	Seed int64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:         640,
		ScreenHeight:        480,
		TPS:                 60,
		Viewport:            raster.Rect{Left: 40, Top: 40, Width: 560, Height: 400},
		ZoomViewport:        raster.Rect{Left: 470, Top: 50, Width: 120, Height: 90},
		Zoom:                2.0,
		ShipSpeed:           4,
		ShipMargin:          20,
		ShipOffsetY:         40,
		ShipCollisionRadius: 12,
		ShotSpeed:           8,
		ShotOffsetY:         15,
		ShotLength:          8,
		AsteroidSpeed:       3,
		AsteroidRadius:      15,
		SpawnInterval:       40,
		ShotScore:           10,
		IntroTicks:          360, // 6 seconds at 60 TPS
		Seed:                1,
	}
}

// Validate reports the first setting that cannot work
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case !c.Viewport.Valid():
		return fmt.Errorf("%w: empty viewport %+v", ErrInvalidConfig, c.Viewport)
	case c.Viewport.Left < 0 || c.Viewport.Top < 0 ||
		c.Viewport.Right() >= c.ScreenWidth || c.Viewport.Bottom() >= c.ScreenHeight:
		return fmt.Errorf("%w: viewport %+v outside %dx%d screen", ErrInvalidConfig, c.Viewport, c.ScreenWidth, c.ScreenHeight)
	case 2*c.ShipMargin >= c.Viewport.Width:
		return fmt.Errorf("%w: ship margin %d too wide for viewport", ErrInvalidConfig, c.ShipMargin)
	case !c.ZoomViewport.Valid():
		return fmt.Errorf("%w: empty zoom viewport %+v", ErrInvalidConfig, c.ZoomViewport)
	case c.Zoom <= 0:
		return fmt.Errorf("%w: zoom %v", ErrInvalidConfig, c.Zoom)
	case c.ShipSpeed <= 0 || c.ShotSpeed <= 0 || c.AsteroidSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.AsteroidRadius <= 0:
		return fmt.Errorf("%w: asteroid radius %d", ErrInvalidConfig, c.AsteroidRadius)
	case c.SpawnInterval < 0:
		return fmt.Errorf("%w: spawn interval %d", ErrInvalidConfig, c.SpawnInterval)
	}
	return nil
}

// ShipMinX returns the leftmost ship position
func (c Config) ShipMinX() int { return c.Viewport.Left + c.ShipMargin }

// ShipMaxX returns the rightmost ship position
func (c Config) ShipMaxX() int { return c.Viewport.Right() - c.ShipMargin }
