package dangerzone

// History is a bounded FIFO of recent player positions used for the motion
// trail. Pushing past capacity evicts the oldest sample.
type History struct {
	buf  []float64
	head int // index of the oldest sample
	size int
}

// NewHistory creates a history holding at most capacity samples.
func NewHistory(capacity int) *History {
	return &History{buf: make([]float64, max(capacity, 0))}
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(pos float64) {
	if len(h.buf) == 0 {
		return
	}
	if h.size < len(h.buf) {
		h.buf[(h.head+h.size)%len(h.buf)] = pos
		h.size++
		return
	}
	h.buf[h.head] = pos
	h.head = (h.head + 1) % len(h.buf)
}

// Len returns the number of samples held.
func (h *History) Len() int {
	return h.size
}

// Cap returns the maximum number of samples.
func (h *History) Cap() int {
	return len(h.buf)
}

// At returns sample i, where 0 is the most recent.
func (h *History) At(i int) float64 {
	return h.buf[(h.head+h.size-1-i)%len(h.buf)]
}

// Clear drops all samples.
func (h *History) Clear() {
	h.head = 0
	h.size = 0
}
