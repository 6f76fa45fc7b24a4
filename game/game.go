package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"galacticimpact/raster"
)

// screenHandler is the per-screen part of the game loop
type screenHandler struct {
	// update consumes one tick of input and returns the event it raised
	update func(in Input) Event

	// draw paints the screen onto the frame buffer
	draw func(dst *raster.Surface)
}

// Game represents the main game state
type Game struct {
	config     Config
	state      *State
	machine    *Machine
	compositor *Compositor
	surface    *raster.Surface
	input      InputSource
	soundtrack Soundtrack
	monitor    *frameMonitor
	handlers   map[Screen]screenHandler

	// frame mirrors surface on the GPU
	frame *ebiten.Image
}

// Option configures a Game
type Option func(*Game)

// WithInput replaces the keyboard with src
func WithInput(src InputSource) Option {
	return func(g *Game) { g.input = src }
}

// WithSoundtrack plays music through st
func WithSoundtrack(st Soundtrack) Option {
	return func(g *Game) { g.soundtrack = st }
}

// NewGame creates a new game instance starting on the intro screen
func NewGame(config Config, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		config:     config,
		state:      NewState(config, rand.New(rand.NewSource(config.Seed))),
		compositor: NewCompositor(config),
		surface:    raster.NewSurface(config.ScreenWidth, config.ScreenHeight),
		input:      NewKeyboardInput(),
		soundtrack: silentSoundtrack{},
		monitor:    newFrameMonitor(config.TPS),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.machine = NewMachine(g.soundtrack)
	g.handlers = g.screenHandlers()

	Logger().Info("game created",
		slog.Int64("seed", config.Seed),
		slog.Int("width", config.ScreenWidth),
		slog.Int("height", config.ScreenHeight))
	return g, nil
}

func (g *Game) screenHandlers() map[Screen]screenHandler {
	c := g.compositor
	return map[Screen]screenHandler{
		ScreenIntro: {
			update: func(in Input) Event {
				if in.AnyKey {
					return EventSkip
				}
				if g.machine.TicksInScreen() >= g.config.IntroTicks {
					return EventTimerExpired
				}
				return EventNone
			},
			draw: func(dst *raster.Surface) { c.drawIntro(dst, g.machine.TicksInScreen()) },
		},
		ScreenInstructions: {
			update: func(in Input) Event {
				if in.Confirm {
					return EventConfirm
				}
				return EventNone
			},
			draw: c.drawInstructions,
		},
		ScreenMenu: {
			update: func(in Input) Event {
				if in.AnyKey {
					return EventAnyKey
				}
				return EventNone
			},
			draw: func(dst *raster.Surface) { c.drawMenu(dst, g.state) },
		},
		ScreenPlaying: {
			update: func(in Input) Event {
				if g.state.Tick(in) {
					return EventCollision
				}
				return EventNone
			},
			draw: func(dst *raster.Surface) { c.Compose(dst, g.state) },
		},
		ScreenGameOver: {
			update: func(in Input) Event {
				if in.AnyKey {
					return EventExit
				}
				return EventNone
			},
			draw: func(dst *raster.Surface) { c.drawGameOver(dst, g.state) },
		},
	}
}

// State returns the simulation state
func (g *Game) State() *State { return g.state }

// Screen returns the active screen
func (g *Game) Screen() Screen { return g.machine.Current() }

// Compositor returns the play field compositor
func (g *Game) Compositor() *Compositor { return g.compositor }

// Surface returns the frame buffer last painted by Render
func (g *Game) Surface() *raster.Surface { return g.surface }

// Step runs one tick with the given input. It returns ebiten.Termination
// once the player leaves the game.
func (g *Game) Step(in Input) error {
	if in.ToggleZoom {
		g.compositor.ShowZoom = !g.compositor.ShowZoom
	}

	ev := EventExit
	if !in.Quit {
		g.machine.Tick()
		ev = g.handlers[g.machine.Current()].update(in)
	}

	switch ev {
	case EventNone:
	case EventExit:
		Logger().Info("exiting", slog.String("screen", g.machine.Current().String()), slog.Int("score", g.state.Score))
		return ebiten.Termination
	default:
		g.machine.Fire(ev)
	}
	return nil
}

// Render paints the active screen into the frame buffer and returns it
func (g *Game) Render() *raster.Surface {
	g.handlers[g.machine.Current()].draw(g.surface)
	return g.surface
}

// Update advances the game by one tick
func (g *Game) Update() error {
	g.monitor.observe(ebiten.ActualTPS(), len(g.state.Shots), len(g.state.Asteroids))
	return g.Step(g.input.Poll())
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.config.ScreenWidth, g.config.ScreenHeight)
	}
	g.frame.WritePixels(g.Render().Pix())
	screen.DrawImage(g.frame, nil)
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
