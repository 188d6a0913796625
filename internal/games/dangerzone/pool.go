package dangerzone

import (
	"github.com/vovakirdan/tui-dangerzone/internal/config"
)

// DangerPool recycles Danger values. Every danger it ever created is in
// exactly one of the free list or the active list.
type DangerPool struct {
	free   []*Danger
	active []*Danger
	total  int
}

// NewDangerPool creates a pool with prealloc dangers ready on the free list.
func NewDangerPool(prealloc int) *DangerPool {
	if prealloc < 0 {
		prealloc = 0
	}
	p := &DangerPool{
		free:   make([]*Danger, 0, prealloc),
		active: make([]*Danger, 0, prealloc),
	}
	for i := 0; i < prealloc; i++ {
		p.free = append(p.free, &Danger{})
	}
	p.total = prealloc
	return p
}

// Allocate takes a free danger (or builds one when none is free), resets it to
// a fresh spawn and makes it active.
func (p *DangerPool) Allocate(rng Rand, cfg *config.Config) *Danger {
	var d *Danger
	if n := len(p.free); n > 0 {
		d = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		d = &Danger{}
		p.total++
	}
	d.Reset(rng, cfg)
	p.active = append(p.active, d)
	return d
}

// ForEachActive calls fn for every active danger. Order is unspecified.
func (p *DangerPool) ForEachActive(fn func(d *Danger)) {
	for _, d := range p.active {
		fn(d)
	}
}

// AnyActive reports whether fn holds for some active danger, stopping at the
// first match.
func (p *DangerPool) AnyActive(fn func(d *Danger) bool) bool {
	for _, d := range p.active {
		if fn(d) {
			return true
		}
	}
	return false
}

// SweepExpired moves every active danger that has gone past -offset back to
// the free list and returns how many were recycled.
func (p *DangerPool) SweepExpired(offset float64) int {
	kept := p.active[:0]
	recycled := 0
	for _, d := range p.active {
		if d.GoneOff(offset) {
			p.free = append(p.free, d)
			recycled++
			continue
		}
		kept = append(kept, d)
	}
	// Drop stale pointers left past the compacted tail
	for i := len(kept); i < len(p.active); i++ {
		p.active[i] = nil
	}
	p.active = kept
	return recycled
}

// ResetAll recycles every active danger. The active list is empty afterward.
func (p *DangerPool) ResetAll() {
	p.free = append(p.free, p.active...)
	for i := range p.active {
		p.active[i] = nil
	}
	p.active = p.active[:0]
}

// Active returns the active dangers. The slice is owned by the pool and is
// only valid until the next mutation.
func (p *DangerPool) Active() []*Danger {
	return p.active
}

// ActiveCount returns the number of dangers in play.
func (p *DangerPool) ActiveCount() int {
	return len(p.active)
}

// FreeCount returns the number of dangers waiting for reuse.
func (p *DangerPool) FreeCount() int {
	return len(p.free)
}

// Total returns how many dangers the pool has ever created.
func (p *DangerPool) Total() int {
	return p.total
}
