package game

import (
	"log/slog"
	"math/rand"

	"galacticimpact/raster"
)

// State is everything the simulation owns: the ship, live shots and
// asteroids, and the score. Only Tick mutates it; the compositor reads it
// after the tick has finished.
type State struct {
	Ship      Ship
	Shots     []Shot
	Asteroids []Asteroid
	Score     int

	// Over is set on the tick an asteroid reaches the ship
	Over bool

	config     Config
	rng        *rand.Rand
	spawnTimer int
	nextID     EntityID
	ticks      int
}

// NewState creates the starting state with the ship centered at the bottom
// of the viewport
func NewState(config Config, rng *rand.Rand) *State {
	vp := config.Viewport
	return &State{
		Ship:      NewShip(raster.Point{X: vp.CenterX(), Y: vp.Bottom() - config.ShipOffsetY}),
		Shots:     make([]Shot, 0, 32),
		Asteroids: make([]Asteroid, 0, 32),
		config:    config,
		rng:       rng,
	}
}

// Ticks returns the number of ticks simulated so far
func (s *State) Ticks() int { return s.ticks }

func (s *State) newID() EntityID {
	s.nextID++
	return s.nextID
}

// Fire launches a shot from just above the ship's nose
func (s *State) Fire() {
	s.Shots = append(s.Shots, Shot{
		ID:  s.newID(),
		Pos: raster.Point{X: s.Ship.Pos.X, Y: s.Ship.Pos.Y - s.config.ShotOffsetY},
		Vel: raster.Point{Y: -s.config.ShotSpeed},
	})
}

// SpawnAsteroidAt drops an asteroid in at the top edge of the viewport
func (s *State) SpawnAsteroidAt(x int) {
	a := Asteroid{
		ID:     s.newID(),
		Pos:    raster.Point{X: x, Y: s.config.Viewport.Top},
		Vel:    raster.Point{Y: s.config.AsteroidSpeed},
		Radius: s.config.AsteroidRadius,
	}
	s.Asteroids = append(s.Asteroids, a)
	Logger().Debug("asteroid spawned", slog.Uint64("id", uint64(a.ID)), slog.Int("x", x))
}

// spawnAsteroid spawns an asteroid at a random x within the ship's lane
func (s *State) spawnAsteroid() {
	lo, hi := s.config.ShipMinX(), s.config.ShipMaxX()
	s.SpawnAsteroidAt(lo + s.rng.Intn(hi-lo+1))
}

// Tick advances the simulation by one frame and reports whether an asteroid
// hit the ship. A finished game no longer changes.
func (s *State) Tick(in Input) bool {
	if s.Over {
		return false
	}
	s.ticks++

	if in.Fire {
		s.Fire()
	}
	s.moveShip(in)

	s.spawnTimer++
	if s.spawnTimer > s.config.SpawnInterval {
		s.spawnAsteroid()
		s.spawnTimer = 0
	}

	for i := range s.Shots {
		s.Shots[i].Pos = s.Shots[i].Pos.Add(s.Shots[i].Vel)
	}
	for i := range s.Asteroids {
		s.Asteroids[i].Pos = s.Asteroids[i].Pos.Add(s.Asteroids[i].Vel)
	}

	deadShots, deadAsteroids := s.resolveShotHits()

	for i, a := range s.Asteroids {
		if deadAsteroids[i] {
			continue
		}
		if a.Touches(s.Ship, s.config.ShipCollisionRadius) {
			deadAsteroids[i] = true
			s.Over = true
			Logger().Info("ship destroyed", slog.Uint64("asteroid", uint64(a.ID)), slog.Int("score", s.Score))
			break
		}
	}

	top, bottom := s.config.Viewport.Top, s.config.Viewport.Bottom()
	for i, shot := range s.Shots {
		if shot.Pos.Y <= top {
			deadShots[i] = true
		}
	}
	for i, a := range s.Asteroids {
		if a.Pos.Y >= bottom {
			deadAsteroids[i] = true
		}
	}
	s.Shots = prune(s.Shots, deadShots)
	s.Asteroids = prune(s.Asteroids, deadAsteroids)

	return s.Over
}

// moveShip applies held directions and keeps the ship inside its lane
func (s *State) moveShip(in Input) {
	if in.Left {
		s.Ship.Pos.X -= s.config.ShipSpeed
	}
	if in.Right {
		s.Ship.Pos.X += s.config.ShipSpeed
	}
	s.Ship.Pos.X = max(s.config.ShipMinX(), min(s.Ship.Pos.X, s.config.ShipMaxX()))
}

// resolveShotHits pairs each shot with the first live asteroid it is inside
// of and marks both for removal
func (s *State) resolveShotHits() (deadShots, deadAsteroids []bool) {
	deadShots = make([]bool, len(s.Shots))
	deadAsteroids = make([]bool, len(s.Asteroids))

	for i, shot := range s.Shots {
		for j, a := range s.Asteroids {
			if deadAsteroids[j] || !a.HitBy(shot) {
				continue
			}
			deadShots[i] = true
			deadAsteroids[j] = true
			s.Score += s.config.ShotScore
			Logger().Debug("asteroid destroyed",
				slog.Uint64("shot", uint64(shot.ID)),
				slog.Uint64("asteroid", uint64(a.ID)),
				slog.Int("score", s.Score))
			break
		}
	}
	return deadShots, deadAsteroids
}

// prune rebuilds items without the entries flagged in dead
func prune[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !dead[i] {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
