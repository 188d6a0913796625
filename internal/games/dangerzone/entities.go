// Package dangerzone implements the Furry Dangerzone simulation: a furry ball
// falls under gravity and bounces upward on demand while spinning dangers
// scroll in from the right. Touching a danger or leaving the screen ends the
// round.
//
// The package is pure logic. Rendering reads a Session, audio and persistence
// are reached through small interfaces, and randomness is injected.
package dangerzone

import (
	"github.com/vovakirdan/tui-dangerzone/internal/config"
	"github.com/vovakirdan/tui-dangerzone/internal/core"
)

// Rand is the random source used for spawns and particles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// randRange returns a uniform value in [lo, hi).
func randRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Player is the furry: a fixed horizontal offset and a vertical position
// integrated under gravity. Y grows downward.
type Player struct {
	Pos      float64 // Vertical position of the center
	Velocity float64 // Vertical velocity, negative is up
}

// Integrate applies one explicit Euler step.
func (p *Player) Integrate(dt, gravity float64) {
	p.Velocity += gravity * dt
	p.Pos += p.Velocity * dt
}

// Jump replaces the velocity with an upward impulse.
func (p *Player) Jump(bounce float64) {
	p.Velocity = -bounce
}

// OutOfBounds reports whether the player left the playfield vertically.
func (p *Player) OutOfBounds(halfHeight, worldHeight float64) bool {
	return p.Pos < halfHeight || p.Pos > worldHeight-halfHeight
}

// Danger is a single spinning obstacle.
type Danger struct {
	Dist       float64 // Horizontal position, decreasing toward the player
	Pos        float64 // Vertical position
	Angle      float64 // Degrees
	AngularVel float64 // Degrees per second
}

// Reset places the danger just beyond the right edge at a random height with
// a random spin.
func (d *Danger) Reset(rng Rand, cfg *config.Config) {
	offset := cfg.Dangers.Offset
	d.Pos = randRange(rng, offset, cfg.World.Height-offset*2)
	d.Dist = cfg.World.Width + offset
	d.AngularVel = randRange(rng, cfg.Dangers.AngularVelocity.Min, cfg.Dangers.AngularVelocity.Max)
	d.Angle = randRange(rng, 0, 360)
}

// Update scrolls and spins the danger.
func (d *Danger) Update(dt, speed float64) {
	d.Dist -= dt * speed
	d.Angle += dt * d.AngularVel
}

// GoneOff reports whether the danger is fully off the left edge.
func (d *Danger) GoneOff(offset float64) bool {
	return d.Dist < -offset
}

// CloseTo reports whether a circle at (x, y) with the given radius touches
// this danger.
func (d *Danger) CloseTo(x, y, radius, ownRadius float64) bool {
	return core.CirclesOverlap(d.Dist, d.Pos, ownRadius, x, y, radius)
}
