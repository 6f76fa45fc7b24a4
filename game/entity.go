package game

import (
	"math"

	"galacticimpact/raster"
)

// EntityID identifies a shot or asteroid for the lifetime of a game
type EntityID uint64

// shipModel is the ship silhouette in local space, nose up
var shipModel = []raster.Point{{X: -10, Y: 10}, {X: 0, Y: -15}, {X: 10, Y: 10}}

// Ship is the player's craft. It only moves horizontally.
type Ship struct {
	// Position in world coordinates
	Pos raster.Point

	// Heading in degrees, applied about the model's local origin
	Angle float64

	// Silhouette in local space
	Model []raster.Point
}

// NewShip creates a ship centered at pos
func NewShip(pos raster.Point) Ship {
	model := make([]raster.Point, len(shipModel))
	copy(model, shipModel)
	return Ship{Pos: pos, Model: model}
}

// Vertices returns the silhouette in world space
func (s Ship) Vertices() []raster.Point {
	return raster.Transform(s.Model, s.Angle, s.Pos)
}

// Shot is a projectile fired by the ship
type Shot struct {
	ID  EntityID
	Pos raster.Point

	// Velocity in pixels per tick
	Vel raster.Point
}

// Asteroid falls through the play field
type Asteroid struct {
	ID     EntityID
	Pos    raster.Point
	Vel    raster.Point
	Radius int
}

// distance calculates the distance between two points
func distance(a, b raster.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// HitBy checks if the shot's position lies inside the asteroid
func (a Asteroid) HitBy(s Shot) bool {
	return distance(s.Pos, a.Pos) < float64(a.Radius)
}

// Touches checks if the asteroid overlaps a ship with the given collision radius
func (a Asteroid) Touches(ship Ship, shipRadius float64) bool {
	return distance(a.Pos, ship.Pos) < float64(a.Radius)+shipRadius
}
