package game

import (
	"math/rand"
	"testing"

	"galacticimpact/raster"
)

func newTestState(config Config) *State {
	return NewState(config, rand.New(rand.NewSource(config.Seed)))
}

// quietConfig never spawns asteroids on its own
func quietConfig() Config {
	c := DefaultConfig()
	c.SpawnInterval = 1 << 30
	return c
}

func TestNewStateShipPlacement(t *testing.T) {
	s := newTestState(DefaultConfig())
	want := raster.Point{X: 320, Y: 400}
	if s.Ship.Pos != want {
		t.Errorf("ship at %v, want %v", s.Ship.Pos, want)
	}
	if len(s.Shots) != 0 || len(s.Asteroids) != 0 || s.Score != 0 || s.Over {
		t.Errorf("new state not empty: %+v", s)
	}
}

func TestAsteroidFalls(t *testing.T) {
	s := newTestState(quietConfig())
	s.SpawnAsteroidAt(100)
	s.Tick(Input{})

	if len(s.Asteroids) != 1 {
		t.Fatalf("got %d asteroids, want 1", len(s.Asteroids))
	}
	if got, want := s.Asteroids[0].Pos, (raster.Point{X: 100, Y: 43}); got != want {
		t.Errorf("asteroid at %v after one tick, want %v", got, want)
	}
}

func TestShotDestroysAsteroid(t *testing.T) {
	s := newTestState(quietConfig())
	s.SpawnAsteroidAt(320)
	s.Asteroids[0].Pos.Y = 365

	if over := s.Tick(Input{Fire: true}); over {
		t.Fatal("game over, want shot to destroy the asteroid first")
	}
	if len(s.Shots) != 0 {
		t.Errorf("got %d shots, want 0", len(s.Shots))
	}
	if len(s.Asteroids) != 0 {
		t.Errorf("got %d asteroids, want 0", len(s.Asteroids))
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
}

func TestShotDestroysOnlyOneAsteroid(t *testing.T) {
	s := newTestState(quietConfig())
	s.SpawnAsteroidAt(320)
	s.SpawnAsteroidAt(320)
	s.Asteroids[0].Pos.Y = 365
	s.Asteroids[1].Pos.Y = 365

	s.Tick(Input{Fire: true})

	if len(s.Asteroids) != 1 {
		t.Fatalf("got %d asteroids, want 1", len(s.Asteroids))
	}
	if s.Asteroids[0].ID != 2 {
		t.Errorf("surviving asteroid id = %d, want the second one", s.Asteroids[0].ID)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
}

func TestShipStaysInLane(t *testing.T) {
	s := newTestState(quietConfig())

	for i := 0; i < 200; i++ {
		s.Tick(Input{Left: true})
		if s.Ship.Pos.X < 60 {
			t.Fatalf("tick %d: ship x = %d, below 60", i, s.Ship.Pos.X)
		}
	}
	if s.Ship.Pos.X != 60 {
		t.Errorf("ship x = %d after holding left, want 60", s.Ship.Pos.X)
	}

	for i := 0; i < 300; i++ {
		s.Tick(Input{Right: true})
		if s.Ship.Pos.X > 580 {
			t.Fatalf("tick %d: ship x = %d, above 580", i, s.Ship.Pos.X)
		}
	}
	if s.Ship.Pos.X != 580 {
		t.Errorf("ship x = %d after holding right, want 580", s.Ship.Pos.X)
	}

	s.Tick(Input{Left: true, Right: true})
	if s.Ship.Pos.X != 580 {
		t.Errorf("opposite directions moved the ship to %d", s.Ship.Pos.X)
	}
}

func TestGameOverOnContact(t *testing.T) {
	s := newTestState(quietConfig())
	s.SpawnAsteroidAt(320)

	// Distance 27 at y=373 is not a hit; y=376 is.
	for i := 1; i <= 111; i++ {
		if s.Tick(Input{}) {
			t.Fatalf("game over on tick %d, want tick 112", i)
		}
	}
	if !s.Tick(Input{}) {
		t.Fatal("no game over on tick 112")
	}
	if !s.Over {
		t.Error("Over not set")
	}
	if len(s.Asteroids) != 0 {
		t.Errorf("asteroids after the crash = %+v, want the colliding one removed", s.Asteroids)
	}
}

func TestFinishedStateIsFrozen(t *testing.T) {
	s := newTestState(DefaultConfig())
	s.Over = true
	x := s.Ship.Pos.X

	if s.Tick(Input{Left: true, Fire: true}) {
		t.Error("Tick on a finished game reported a collision")
	}
	if s.Ship.Pos.X != x || len(s.Shots) != 0 || s.Ticks() != 0 {
		t.Errorf("finished game changed: x=%d shots=%d ticks=%d", s.Ship.Pos.X, len(s.Shots), s.Ticks())
	}
}

func TestOffscreenEntitiesPruned(t *testing.T) {
	s := newTestState(quietConfig())
	s.SpawnAsteroidAt(100)
	s.Tick(Input{Fire: true})

	// Shot starts at y=385 and moves 8 per tick
	for i := 2; i <= 43; i++ {
		s.Tick(Input{})
	}
	if len(s.Shots) != 1 || s.Shots[0].Pos.Y != 41 {
		t.Fatalf("shots after 43 ticks = %+v, want one at y=41", s.Shots)
	}
	s.Tick(Input{})
	if len(s.Shots) != 0 {
		t.Errorf("shot at y<=top not pruned: %+v", s.Shots)
	}

	// Asteroid starts at y=40 and moves 3 per tick
	for i := 45; i <= 133; i++ {
		s.Tick(Input{})
	}
	if len(s.Asteroids) != 1 || s.Asteroids[0].Pos.Y != 439 {
		t.Fatalf("asteroids after 133 ticks = %+v, want one at y=439", s.Asteroids)
	}
	s.Tick(Input{})
	if len(s.Asteroids) != 0 {
		t.Errorf("asteroid at y>=bottom not pruned: %+v", s.Asteroids)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, pruning must not score", s.Score)
	}
}

func TestSpawnCadence(t *testing.T) {
	config := DefaultConfig()
	s := newTestState(config)

	for i := 1; i <= 40; i++ {
		s.Tick(Input{})
	}
	if len(s.Asteroids) != 0 {
		t.Fatalf("spawned %d asteroids before tick 41", len(s.Asteroids))
	}

	s.Tick(Input{})
	if len(s.Asteroids) != 1 {
		t.Fatalf("got %d asteroids on tick 41, want 1", len(s.Asteroids))
	}
	a := s.Asteroids[0]
	if a.Pos.Y != config.Viewport.Top+config.AsteroidSpeed {
		t.Errorf("new asteroid y = %d, want %d", a.Pos.Y, config.Viewport.Top+config.AsteroidSpeed)
	}
	if a.Pos.X < config.ShipMinX() || a.Pos.X > config.ShipMaxX() {
		t.Errorf("new asteroid x = %d outside [%d, %d]", a.Pos.X, config.ShipMinX(), config.ShipMaxX())
	}

	for i := 42; i <= 81; i++ {
		s.Tick(Input{})
	}
	if len(s.Asteroids) != 1 {
		t.Fatalf("got %d asteroids after 81 ticks, want 1", len(s.Asteroids))
	}
	s.Tick(Input{})
	if len(s.Asteroids) != 2 {
		t.Errorf("got %d asteroids on tick 82, want 2", len(s.Asteroids))
	}
}

func TestSameSeedSameGame(t *testing.T) {
	a := newTestState(DefaultConfig())
	b := newTestState(DefaultConfig())

	for i := 0; i < 100; i++ {
		a.Tick(Input{})
		b.Tick(Input{})
	}
	if len(a.Asteroids) != len(b.Asteroids) {
		t.Fatalf("asteroid counts differ: %d vs %d", len(a.Asteroids), len(b.Asteroids))
	}
	for i := range a.Asteroids {
		if a.Asteroids[i] != b.Asteroids[i] {
			t.Errorf("asteroid %d differs: %+v vs %+v", i, a.Asteroids[i], b.Asteroids[i])
		}
	}
}

func TestAsteroidHitTests(t *testing.T) {
	a := Asteroid{Pos: raster.Point{X: 100, Y: 100}, Radius: 15}

	tests := []struct {
		shot raster.Point
		want bool
	}{
		{raster.Point{X: 100, Y: 100}, true},
		{raster.Point{X: 114, Y: 100}, true},
		{raster.Point{X: 115, Y: 100}, false},
		{raster.Point{X: 111, Y: 111}, false},
	}
	for _, tt := range tests {
		if got := a.HitBy(Shot{Pos: tt.shot}); got != tt.want {
			t.Errorf("HitBy(%v) = %v, want %v", tt.shot, got, tt.want)
		}
	}

	ship := NewShip(raster.Point{X: 100, Y: 127})
	if a.Touches(ship, 12) {
		t.Error("Touches at distance 27 = true, want false")
	}
	ship.Pos.Y = 126
	if !a.Touches(ship, 12) {
		t.Error("Touches at distance 26 = false, want true")
	}
}
