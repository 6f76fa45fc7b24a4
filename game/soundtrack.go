package game

// Track names a piece of background music
type Track int

const (
	TrackIntro Track = iota
	TrackMain
)

func (t Track) String() string {
	switch t {
	case TrackIntro:
		return "intro"
	case TrackMain:
		return "main"
	default:
		return "unknown"
	}
}

// Soundtrack plays background music. Calls must not block the game loop.
type Soundtrack interface {
	// Play starts track on a loop, replacing whatever was playing
	Play(track Track)

	// Stop silences the music
	Stop()
}

// silentSoundtrack is used when no audio backend is wired in
type silentSoundtrack struct{}

func (silentSoundtrack) Play(Track) {}
func (silentSoundtrack) Stop()      {}
