package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one tick's worth of player intent. Left and Right are held
// state; the rest are key-down events since the previous tick.
type Input struct {
	Left  bool // Move left (Left arrow/A)
	Right bool // Move right (Right arrow/D)

	Fire       bool // Space
	Confirm    bool // Enter
	AnyKey     bool // Any key went down this tick
	ToggleZoom bool // F1
	Quit       bool // Escape
}

// InputSource provides input once per tick without blocking
type InputSource interface {
	Poll() Input
}

// KeyboardInput provides input from the keyboard
type KeyboardInput struct {
	keys []ebiten.Key
}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		keys: make([]ebiten.Key, 0, 10),
	}
}

// Poll samples held keys and drains the keys pressed since the last tick
func (k *KeyboardInput) Poll() Input {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])

	return Input{
		Left:       ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:      ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Confirm:    inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		AnyKey:     len(k.keys) > 0,
		ToggleZoom: inpututil.IsKeyJustPressed(ebiten.KeyF1),
		Quit:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// ScriptedInput replays a fixed list of inputs, one per tick, and reports
// no input once the list runs out.
type ScriptedInput struct {
	frames []Input
	next   int
}

// NewScriptedInput creates an input source that replays frames in order
func NewScriptedInput(frames ...Input) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

// Poll returns the next scripted frame
func (s *ScriptedInput) Poll() Input {
	if s.next >= len(s.frames) {
		return Input{}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

// Autopilot plays without a keyboard: it presses through the title screens,
// sweeps the ship from side to side and fires at a fixed cadence.
type Autopilot struct {
	// FireEvery is the number of ticks between shots
	FireEvery int

	// SweepTicks is how long the ship holds one direction
	SweepTicks int

	// ConfirmEvery is the number of ticks between confirm presses on title screens
	ConfirmEvery int

	tick int
}

// NewAutopilot creates an autopilot with a steady firing rhythm
func NewAutopilot() *Autopilot {
	return &Autopilot{
		FireEvery:    12,
		SweepTicks:   90,
		ConfirmEvery: 30,
	}
}

// Poll returns the autopilot's input for the next tick
func (a *Autopilot) Poll() Input {
	a.tick++
	var in Input
	if a.ConfirmEvery > 0 && a.tick%a.ConfirmEvery == 0 {
		in.Confirm = true
		in.AnyKey = true
	}
	if a.SweepTicks > 0 {
		if (a.tick/a.SweepTicks)%2 == 0 {
			in.Left = true
		} else {
			in.Right = true
		}
	}
	if a.FireEvery > 0 && a.tick%a.FireEvery == 0 {
		in.Fire = true
		in.AnyKey = true
	}
	return in
}
