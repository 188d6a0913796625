package dangerzone

// State is the session's round phase.
type State int

const (
	StateIdle           State = iota // Title screen, waiting to start
	StatePlaying                     // Round in progress
	StateGameOver                    // Crashed, particles flying
	StateHighScoreEntry              // Crashed with a qualifying score, name prompt open
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateHighScoreEntry:
		return "high_score_entry"
	default:
		return "unknown"
	}
}

// IsOver reports whether the round has ended.
func (s State) IsOver() bool {
	return s == StateGameOver || s == StateHighScoreEntry
}
