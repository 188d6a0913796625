package audio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-dangerzone/internal/games/dangerzone"
)

// drain streams s to completion and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return 0
}

func TestCueStreamsAreFinite(t *testing.T) {
	s, err := Open(false, nil)
	if err != nil {
		t.Fatalf("Open(false) error: %v", err)
	}

	tests := []struct {
		cue  dangerzone.Cue
		want time.Duration
	}{
		{dangerzone.CueJump, 100 * time.Millisecond},
		{dangerzone.CueBegin, 320 * time.Millisecond},
		{dangerzone.CueExplode, 400 * time.Millisecond},
	}
	for _, tt := range tests {
		st, err := s.streamer(tt.cue)
		if err != nil {
			t.Fatalf("streamer(%v): %v", tt.cue, err)
		}
		if got, want := drain(t, st), sampleRate.N(tt.want); got != want {
			t.Errorf("%v: %d samples, expected %d", tt.cue, got, want)
		}
	}
}

func TestUnknownCue(t *testing.T) {
	s, _ := Open(false, nil)
	if _, err := s.streamer(dangerzone.Cue(99)); err == nil {
		t.Error("expected an error for an unknown cue")
	}
}

func TestDisabledSinkIsSilent(t *testing.T) {
	s, _ := Open(false, nil)
	if s.Enabled() {
		t.Fatal("Open(false) should return a disabled sink")
	}
	// Must not touch the speaker
	s.Play(dangerzone.CueExplode)
	s.Close()
}

func TestNoiseBurstFades(t *testing.T) {
	st := noiseBurst(rand.New(rand.NewSource(1)), 10*time.Millisecond)
	buf := make([][2]float64, sampleRate.N(10*time.Millisecond))
	n, _ := st.Stream(buf)
	last := buf[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("last sample %f, expected close to silence", last)
	}
}
