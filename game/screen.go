package game

import "log/slog"

// Screen is a state of the game flow
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenInstructions
	ScreenMenu
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenIntro:
		return "intro"
	case ScreenInstructions:
		return "instructions"
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event drives transitions between screens
type Event int

const (
	EventNone         Event = iota
	EventTimerExpired       // intro ran its full length
	EventSkip               // key pressed during the intro
	EventConfirm            // Enter on the instructions screen
	EventAnyKey             // key pressed on the menu
	EventCollision          // asteroid reached the ship
	EventExit               // leave the process; valid from every screen
)

// transitions is the complete flow. GameOver has no way out but EventExit.
var transitions = map[Screen]map[Event]Screen{
	ScreenIntro: {
		EventTimerExpired: ScreenInstructions,
		EventSkip:         ScreenInstructions,
	},
	ScreenInstructions: {
		EventConfirm: ScreenMenu,
	},
	ScreenMenu: {
		EventAnyKey: ScreenPlaying,
	},
	ScreenPlaying: {
		EventCollision: ScreenGameOver,
	},
}

// Machine tracks the current screen and runs the music cues tied to
// entering and leaving screens
type Machine struct {
	current       Screen
	ticksInScreen int
	soundtrack    Soundtrack
}

// NewMachine creates a machine on the intro screen
func NewMachine(soundtrack Soundtrack) *Machine {
	if soundtrack == nil {
		soundtrack = silentSoundtrack{}
	}
	m := &Machine{current: ScreenIntro, soundtrack: soundtrack}
	m.soundtrack.Play(TrackIntro)
	return m
}

// Current returns the active screen
func (m *Machine) Current() Screen { return m.current }

// TicksInScreen returns how many ticks the active screen has run
func (m *Machine) TicksInScreen() int { return m.ticksInScreen }

// Terminal reports whether the machine can no longer change screens
func (m *Machine) Terminal() bool { return len(transitions[m.current]) == 0 }

// Tick counts one frame spent on the current screen
func (m *Machine) Tick() { m.ticksInScreen++ }

// Fire applies ev and reports whether the screen changed. Events with no
// entry for the current screen are ignored.
func (m *Machine) Fire(ev Event) bool {
	next, ok := transitions[m.current][ev]
	if !ok {
		return false
	}
	prev := m.current
	m.current = next
	m.ticksInScreen = 0

	if prev == ScreenIntro {
		m.soundtrack.Play(TrackMain)
	}
	if next == ScreenGameOver {
		m.soundtrack.Stop()
	}
	Logger().Info("screen changed", slog.String("from", prev.String()), slog.String("to", next.String()))
	return true
}
