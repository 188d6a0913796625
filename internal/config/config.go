// Package config provides YAML-based tuning configuration and the difficulty
// model for Furry Dangerzone.
package config

import (
	"fmt"
)

// Config contains every tunable constant of the simulation.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Dangers    DangerConfig     `yaml:"dangers"`
	Particles  ParticleConfig   `yaml:"particles"`
	Score      ScoreConfig      `yaml:"score"`
	Motion     MotionConfig     `yaml:"motion"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Session    SessionConfig    `yaml:"session"`
}

// WorldConfig defines the logical playfield. The renderer scales it to the terminal.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player actor.
type PlayerConfig struct {
	OffsetX    float64 `yaml:"offset_x"`    // Fixed distance from the left edge
	Radius     float64 `yaml:"radius"`      // Collision radius (sprite half-width)
	HalfHeight float64 `yaml:"half_height"` // Used for the top/bottom bounds check
	Bounce     float64 `yaml:"bounce"`      // Upward impulse on jump
	Gravity    float64 `yaml:"gravity"`
}

// Range is an inclusive [min, max] interval for random draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DangerConfig defines obstacle spawning and motion.
type DangerConfig struct {
	Offset          float64 `yaml:"offset"` // Spawn margin and off-screen threshold
	Period          float64 `yaml:"period"` // Seconds between spawn decisions
	Speed           float64 `yaml:"speed"`  // Scroll speed, units per second
	Radius          float64 `yaml:"radius"`
	PoolSize        int     `yaml:"pool_size"` // Preallocated free obstacles
	AngularVelocity Range   `yaml:"angular_velocity"`
}

// ParticleConfig defines the game-over explosion burst.
type ParticleConfig struct {
	Count           int     `yaml:"count"`
	BaseSpeed       float64 `yaml:"base_speed"`
	MinFactor       float64 `yaml:"min_factor"`
	MaxFactor       float64 `yaml:"max_factor"`
	AngularVelocity Range   `yaml:"angular_velocity"`
}

// ScoreConfig defines score accrual.
type ScoreConfig struct {
	PerSecond float64 `yaml:"per_second"`
}

// MotionConfig defines the motion-trail effect.
type MotionConfig struct {
	BlurSamples     int     `yaml:"blur_samples"`
	BlurOffset      float64 `yaml:"blur_offset"`
	BlurAlpha       float64 `yaml:"blur_alpha"`
	HistoryDistance float64 `yaml:"history_distance"`
	MotionDT        float64 `yaml:"motion_dt"`
	AngleFactor     float64 `yaml:"angle_factor"`
}

// DifficultyConfig defines the tiered spawn-count tables.
type DifficultyConfig struct {
	LevelUp float64     `yaml:"level_up"` // Score needed per tier
	Tiers   [][]float64 `yaml:"tiers"`    // Ascending cumulative thresholds per tier
	Preset  string      `yaml:"preset"`   // easy, normal, hard, fixed
}

// SessionConfig defines round flow and timing policy.
type SessionConfig struct {
	GameOverDelay float64 `yaml:"game_over_delay"` // Input debounce after a crash
	MaxScores     int     `yaml:"max_scores"`      // Ledger size
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Longest frame applied as-is
	MaxStep       float64 `yaml:"max_step"`        // Longest integration sub-step
}

// ValidationError contains details about a configuration problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_WORLD",
			Message: fmt.Sprintf("world size must be positive, got %vx%v", c.World.Width, c.World.Height),
		}
	}
	if c.Player.HalfHeight*2 >= c.World.Height {
		return ValidationError{
			Code:    "INVALID_PLAYER",
			Message: "player does not fit inside the world height",
		}
	}
	if c.Dangers.Period <= 0 {
		return ValidationError{Code: "INVALID_PERIOD", Message: "dangers.period must be positive"}
	}
	if c.Dangers.Speed < 0 {
		return ValidationError{Code: "INVALID_SPEED", Message: "dangers.speed must not be negative"}
	}
	if c.World.Height-2*c.Dangers.Offset < c.Dangers.Offset {
		return ValidationError{Code: "INVALID_OFFSET", Message: "dangers.offset leaves no spawn band"}
	}
	if err := validateRange("dangers.angular_velocity", c.Dangers.AngularVelocity); err != nil {
		return err
	}
	if err := validateRange("particles.angular_velocity", c.Particles.AngularVelocity); err != nil {
		return err
	}
	if c.Particles.Count < 0 {
		return ValidationError{Code: "INVALID_PARTICLES", Message: "particles.count must not be negative"}
	}
	if c.Particles.MinFactor > c.Particles.MaxFactor {
		return ValidationError{Code: "INVALID_RANGE", Message: "particles.min_factor exceeds max_factor"}
	}
	if c.Motion.BlurSamples < 0 {
		return ValidationError{Code: "INVALID_MOTION", Message: "motion.blur_samples must not be negative"}
	}
	if c.Session.MaxScores <= 0 {
		return ValidationError{Code: "INVALID_LEDGER", Message: "session.max_scores must be positive"}
	}
	if c.Session.MaxStep <= 0 || c.Session.MaxFrameDelta <= 0 {
		return ValidationError{Code: "INVALID_TIMING", Message: "session.max_step and max_frame_delta must be positive"}
	}
	return c.Difficulty.validate()
}

func (d DifficultyConfig) validate() error {
	if d.LevelUp <= 0 {
		return ValidationError{Code: "INVALID_LEVEL_UP", Message: "difficulty.level_up must be positive"}
	}
	if len(d.Tiers) == 0 {
		return ValidationError{Code: "NO_TIERS", Message: "difficulty.tiers must not be empty"}
	}
	for i, tier := range d.Tiers {
		prev := 0.0
		for j, th := range tier {
			if th < 0 || th > 1 {
				return ValidationError{
					Code:    "INVALID_THRESHOLD",
					Message: fmt.Sprintf("tier %d threshold %d out of [0,1]: %v", i, j, th),
				}
			}
			if th < prev {
				return ValidationError{
					Code:    "UNSORTED_TIER",
					Message: fmt.Sprintf("tier %d thresholds must ascend", i),
				}
			}
			prev = th
		}
	}
	if _, err := ParsePreset(d.Preset); err != nil {
		return ValidationError{Code: "INVALID_PRESET", Message: err.Error()}
	}
	return nil
}

func validateRange(name string, r Range) error {
	if r.Min > r.Max {
		return ValidationError{
			Code:    "INVALID_RANGE",
			Message: fmt.Sprintf("%s: min %v exceeds max %v", name, r.Min, r.Max),
		}
	}
	return nil
}
