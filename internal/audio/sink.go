// Package audio plays the game's sound cues through the system speaker.
// Every cue is synthesized on the fly; there are no sound files.
package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dangerzone/internal/games/dangerzone"
)

const sampleRate = beep.SampleRate(44100)

// Sink mixes cues onto the speaker. A Sink that failed to open, or was
// opened disabled, stays silent.
type Sink struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	noise   *rand.Rand
	logger  *log.Logger
}

// Open initializes the speaker. When enabled is false, or the speaker cannot be
// opened (no audio device, CI), a silent sink is returned together with the
// initialization error so the caller can warn about it.
func Open(enabled bool, logger *log.Logger) (*Sink, error) {
	s := &Sink{
		mixer:  &beep.Mixer{},
		noise:  rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	if !enabled {
		return s, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.enabled = true
	return s, nil
}

// Enabled reports whether cues reach the speaker.
func (s *Sink) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Play implements dangerzone.AudioSink. It never blocks on playback.
func (s *Sink) Play(cue dangerzone.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}

	st, err := s.streamer(cue)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("audio cue failed", "cue", cue, "err", err)
		}
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences and releases the speaker.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.enabled = false
}

// streamer synthesizes a finite stream for a cue.
func (s *Sink) streamer(cue dangerzone.Cue) (beep.Streamer, error) {
	switch cue {
	case dangerzone.CueJump:
		// Short rising blip
		return chain(generators.SineTone, -1.5, []note{
			{440, 30 * time.Millisecond},
			{660, 30 * time.Millisecond},
			{880, 40 * time.Millisecond},
		})
	case dangerzone.CueBegin:
		return chain(generators.SquareTone, -3, []note{
			{523.25, 120 * time.Millisecond},
			{783.99, 200 * time.Millisecond},
		})
	case dangerzone.CueExplode:
		return &effects.Volume{
			Streamer: noiseBurst(s.noise, 400*time.Millisecond),
			Base:     2,
			Volume:   -1,
		}, nil
	}
	return nil, fmt.Errorf("audio: unknown cue %d", cue)
}

type note struct {
	freq float64
	dur  time.Duration
}

type toneFunc func(sr beep.SampleRate, freq float64) (beep.StreamSeeker, error)

// chain plays notes back to back at the given volume (log2 scale).
func chain(tone toneFunc, volume float64, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		st, err := tone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), st))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// noiseBurst is white noise with a linear fade out.
func noiseBurst(rng *rand.Rand, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			amp := 1 - float64(pos)/float64(total)
			v := (rng.Float64()*2 - 1) * amp
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
