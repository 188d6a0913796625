package dangerzone

import (
	"testing"

	"github.com/vovakirdan/tui-dangerzone/internal/config"
	"github.com/vovakirdan/tui-dangerzone/internal/core"
	"github.com/vovakirdan/tui-dangerzone/internal/ledger"
)

// constRand always returns the same draw.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// recordingAudio remembers every cue played.
type recordingAudio struct {
	cues []Cue
}

func (r *recordingAudio) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *recordingAudio) count(c Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

// newTestSession returns an idle session with the default config and a
// constant random source.
func newTestSession(t *testing.T, draw float64) (*Session, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	s := NewSession(config.DefaultConfig(), nil, Options{
		Rand:  constRand(draw),
		Audio: audio,
	})
	return s, audio
}

// startRound moves the session from Idle to Playing.
func startRound(t *testing.T, s *Session) {
	t.Helper()
	if res := s.OnInput(core.ActionJump); !res.Started {
		t.Fatalf("OnInput in Idle = %+v, expected Started", res)
	}
	if s.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", s.State())
	}
}

// crash ends the current round by dropping the player below the floor.
func crash(t *testing.T, s *Session) TickResult {
	t.Helper()
	s.player.Pos = s.cfg.World.Height
	s.player.Velocity = 0
	res := s.Update(0.01)
	if !res.EnteredGameOver {
		t.Fatalf("Update() = %+v, expected EnteredGameOver", res)
	}
	return res
}

// fullLedger returns a ledger that no score below 1000 can enter.
func fullLedger() *ledger.Ledger {
	l := ledger.New(7)
	for i := 0; i < 7; i++ {
		l.Insert(1000+i, "pro")
	}
	return l
}
