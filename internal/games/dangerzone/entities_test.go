package dangerzone

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-dangerzone/internal/config"
)

func TestPlayerIntegrate(t *testing.T) {
	p := Player{Pos: 300}
	p.Integrate(0.1, 1500)

	if p.Velocity != 150 {
		t.Errorf("Velocity = %v, expected 150", p.Velocity)
	}
	// Position uses the updated velocity
	if math.Abs(p.Pos-315) > 1e-9 {
		t.Errorf("Pos = %v, expected 315", p.Pos)
	}
}

func TestPlayerJumpReplacesVelocity(t *testing.T) {
	p := Player{Pos: 300, Velocity: 900}
	p.Jump(500)
	if p.Velocity != -500 {
		t.Errorf("Velocity after Jump = %v, expected -500", p.Velocity)
	}
}

func TestPlayerOutOfBounds(t *testing.T) {
	tests := []struct {
		pos  float64
		want bool
	}{
		{31.9, true},
		{32, false},
		{300, false},
		{568, false},
		{568.1, true},
	}
	for _, tt := range tests {
		p := Player{Pos: tt.pos}
		if got := p.OutOfBounds(32, 600); got != tt.want {
			t.Errorf("OutOfBounds at %v = %v, expected %v", tt.pos, got, tt.want)
		}
	}
}

func TestDangerCloseTo(t *testing.T) {
	d := Danger{Dist: 100, Pos: 300}
	if !d.CloseTo(100, 300, 32, 24) {
		t.Error("concentric circles should collide")
	}
	if !d.CloseTo(155.9, 300, 32, 24) {
		t.Error("circles 55.9 apart with radii 32+24 should collide")
	}
	if d.CloseTo(156, 300, 32, 24) {
		t.Error("touching circles should not collide")
	}
}

func TestDangerUpdateSpins(t *testing.T) {
	d := Danger{Dist: 850, Angle: 10, AngularVel: -100}
	d.Update(0.5, 500)
	if d.Dist != 600 || d.Angle != -40 {
		t.Errorf("after Update: Dist=%v Angle=%v, expected 600 and -40", d.Dist, d.Angle)
	}
}

func TestParticleSeedOnce(t *testing.T) {
	cfg := config.DefaultConfig()
	ps := NewParticleSystem(cfg.Particles.Count)

	if !ps.Seed(100, 300, constRand(0.5), &cfg) {
		t.Fatal("first Seed should succeed")
	}
	if ps.Seed(100, 300, constRand(0.5), &cfg) {
		t.Error("second Seed in the same round should be refused")
	}
	if n := len(ps.Particles()); n != cfg.Particles.Count {
		t.Errorf("particle count = %d, expected %d", n, cfg.Particles.Count)
	}

	ps.Clear()
	if ps.Seeded() || len(ps.Particles()) != 0 {
		t.Error("Clear should empty the system and allow reseeding")
	}
	if !ps.Seed(100, 300, constRand(0.5), &cfg) {
		t.Error("Seed after Clear should succeed")
	}
}

func TestParticleLeadOffset(t *testing.T) {
	cfg := config.DefaultConfig()
	ps := NewParticleSystem(1)
	cfg.Particles.Count = 1

	// Draw 0.5: speed factor 0.755, direction pi (straight left)
	ps.Seed(100, 300, constRand(0.5), &cfg)
	p := ps.Particles()[0]

	speed := (cfg.Particles.MinFactor + 0.5*(cfg.Particles.MaxFactor-cfg.Particles.MinFactor)) * cfg.Particles.BaseSpeed
	lead := cfg.Motion.MotionDT * float64(cfg.Motion.BlurSamples)
	if math.Abs(p.VX+speed) > 1e-9 || math.Abs(p.VY) > 1e-9 {
		t.Errorf("velocity = (%v, %v), expected (%v, 0)", p.VX, p.VY, -speed)
	}
	if math.Abs(p.X-(100-speed*lead)) > 1e-9 {
		t.Errorf("X = %v, expected %v", p.X, 100-speed*lead)
	}

	ps.Update(0.1)
	if math.Abs(p.X+p.VX*0.1-ps.Particles()[0].X) > 1e-9 {
		t.Error("Update should move particles along their velocity")
	}
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 100; i++ {
		h.Push(float64(i))
		if h.Len() > h.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", h.Len(), h.Cap())
		}
	}
	if h.Len() != 10 {
		t.Errorf("Len() = %d, expected 10", h.Len())
	}
	if h.At(0) != 99 || h.At(9) != 90 {
		t.Errorf("At(0)=%v At(9)=%v, expected 99 and 90", h.At(0), h.At(9))
	}

	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() after Clear = %d", h.Len())
	}
	h.Push(5)
	if h.At(0) != 5 {
		t.Errorf("At(0) after Clear and Push = %v, expected 5", h.At(0))
	}
}

func TestSpinGlyphNegativeAngles(t *testing.T) {
	frames := []rune{'a', 'b'}
	if got := spinGlyph(frames, -10); got != 'b' {
		t.Errorf("spinGlyph(-10) = %q, expected 'b'", got)
	}
	if got := spinGlyph(frames, 50); got != 'b' {
		t.Errorf("spinGlyph(50) = %q, expected 'b'", got)
	}
	if got := spinGlyph(frames, 95); got != 'a' {
		t.Errorf("spinGlyph(95) = %q, expected 'a'", got)
	}
}
