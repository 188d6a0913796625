package config

import (
	"fmt"
	"math"
)

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// hardTierOffset is how many tiers the hard preset skips at the start.
const hardTierOffset = 2

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy, PresetHard, PresetFixed:
		return Preset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty preset %q (want easy, normal, hard or fixed)", s)
}

// DifficultyModel maps the current score to a spawn-count distribution.
type DifficultyModel struct {
	levelUp   float64
	tiers     [][]float64
	startTier int
	fixed     bool
}

// NewDifficultyModel creates a difficulty model from config.
// Assumes the config passed Validate; an unknown preset falls back to normal.
func NewDifficultyModel(cfg DifficultyConfig) *DifficultyModel {
	d := &DifficultyModel{
		levelUp: cfg.LevelUp,
		tiers:   cfg.Tiers,
	}
	if len(d.tiers) == 0 {
		d.tiers = [][]float64{{}}
	}
	if d.levelUp <= 0 {
		d.levelUp = 1
	}

	preset, _ := ParsePreset(cfg.Preset)
	switch preset {
	case PresetHard:
		d.startTier = min(hardTierOffset, len(d.tiers)-1)
	case PresetFixed:
		d.fixed = true
	}
	return d
}

// TierCount returns the number of tiers.
func (d *DifficultyModel) TierCount() int {
	return len(d.tiers)
}

// Thresholds returns the cumulative thresholds of tier i.
func (d *DifficultyModel) Thresholds(i int) []float64 {
	return d.tiers[i]
}

// Tier returns the tier index for the given score:
// min(startTier + floor(score / levelUp), lastTier).
func (d *DifficultyModel) Tier(score float64) int {
	if d.fixed {
		return d.startTier
	}
	if score < 0 || math.IsNaN(score) {
		score = 0
	}
	steps := math.Floor(score / d.levelUp)
	last := len(d.tiers) - 1
	if steps >= float64(last) {
		return last
	}
	return min(d.startTier+int(steps), last)
}

// SpawnCount returns how many obstacles to spawn for a random draw in [0, 1).
// It is the index of the first threshold exceeding the draw, or the tier length
// when none does.
func (d *DifficultyModel) SpawnCount(score, draw float64) int {
	thresholds := d.tiers[d.Tier(score)]
	if math.IsNaN(draw) || draw < 0 {
		draw = 0
	}
	for i, th := range thresholds {
		if draw < th {
			return i
		}
	}
	return len(thresholds)
}

// Probabilities returns the probability of each spawn count 0..len(tier) for tier i.
func (d *DifficultyModel) Probabilities(i int) []float64 {
	thresholds := d.tiers[i]
	probs := make([]float64, len(thresholds)+1)
	prev := 0.0
	for j, th := range thresholds {
		probs[j] = th - prev
		prev = th
	}
	probs[len(thresholds)] = 1 - prev
	return probs
}
