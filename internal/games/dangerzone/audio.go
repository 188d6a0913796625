package dangerzone

// Cue identifies a one-shot sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueBegin
	CueExplode
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueBegin:
		return "begin"
	case CueExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// AudioSink plays sound cues. Play must not block the simulation.
type AudioSink interface {
	Play(cue Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements AudioSink.
func (NopAudio) Play(Cue) {}
