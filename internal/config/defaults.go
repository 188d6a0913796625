package config

import (
	_ "embed"
)

//go:embed defaults/dangerzone.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			OffsetX:    100,
			Radius:     32,
			HalfHeight: 32,
			Bounce:     500,
			Gravity:    1500,
		},
		Dangers: DangerConfig{
			Offset:          50,
			Period:          0.3,
			Speed:           500,
			Radius:          24,
			PoolSize:        10,
			AngularVelocity: Range{Min: -180, Max: -90},
		},
		Particles: ParticleConfig{
			Count:           200,
			BaseSpeed:       500,
			MinFactor:       0.01,
			MaxFactor:       1.5,
			AngularVelocity: Range{Min: 45, Max: 180},
		},
		Score: ScoreConfig{
			PerSecond: 10,
		},
		Motion: MotionConfig{
			BlurSamples:     10,
			BlurOffset:      5,
			BlurAlpha:       64,
			HistoryDistance: 5,
			MotionDT:        0.01,
			AngleFactor:     0.1,
		},
		Difficulty: DifficultyConfig{
			LevelUp: 150,
			Preset:  string(PresetNormal),
			Tiers: [][]float64{
				{0.2, 0.8},
				{0.15, 0.6},
				{0.1, 0.6},
				{0.05, 0.5},
				{0, 0.5},
			},
		},
		Session: SessionConfig{
			GameOverDelay: 0.3,
			MaxScores:     7,
			MaxFrameDelta: 0.25,
			MaxStep:       0.02,
		},
	}
}
