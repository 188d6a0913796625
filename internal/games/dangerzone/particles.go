package dangerzone

import (
	"math"

	"github.com/vovakirdan/tui-dangerzone/internal/config"
)

// Particle is one fragment of the game-over explosion.
type Particle struct {
	X, Y       float64
	VX, VY     float64
	Angle      float64 // Degrees
	AngularVel float64 // Degrees per second
}

// ParticleSystem holds the single explosion burst of a round.
type ParticleSystem struct {
	particles []Particle
	seeded    bool
}

// NewParticleSystem creates an empty particle system with room for capacity particles.
func NewParticleSystem(capacity int) *ParticleSystem {
	return &ParticleSystem{particles: make([]Particle, 0, max(capacity, 0))}
}

// Seed spawns the burst at (x, y). It does nothing and returns false if this
// round already has a burst.
func (ps *ParticleSystem) Seed(x, y float64, rng Rand, cfg *config.Config) bool {
	if ps.seeded {
		return false
	}
	ps.seeded = true

	pc := cfg.Particles
	lead := cfg.Motion.MotionDT * float64(cfg.Motion.BlurSamples)
	for i := 0; i < pc.Count; i++ {
		v := randRange(rng, pc.MinFactor, pc.MaxFactor) * pc.BaseSpeed
		theta := randRange(rng, 0, 2*math.Pi)
		vx := v * math.Cos(theta)
		vy := v * math.Sin(theta)
		ps.particles = append(ps.particles, Particle{
			X:          x + vx*lead,
			Y:          y + vy*lead,
			VX:         vx,
			VY:         vy,
			AngularVel: randRange(rng, pc.AngularVelocity.Min, pc.AngularVelocity.Max),
			Angle:      randRange(rng, 0, 360),
		})
	}
	return true
}

// Update moves and spins every particle.
func (ps *ParticleSystem) Update(dt float64) {
	for i := range ps.particles {
		p := &ps.particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Angle += p.AngularVel * dt
	}
}

// Clear removes the burst and allows the next round to seed again.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
	ps.seeded = false
}

// Particles returns the live particles. Owned by the system.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Seeded reports whether this round's burst exists.
func (ps *ParticleSystem) Seeded() bool {
	return ps.seeded
}
