// Package ledger keeps the high-score table: an ordered top-N list of
// (score, name) entries with a pluggable persistence hook.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// MaxNameLen is the longest player name kept, in runes.
const MaxNameLen = 16

// DefaultName replaces empty names.
const DefaultName = "anonymous"

// ErrNoPersister is returned by Save when the ledger has nowhere to write.
var ErrNoPersister = errors.New("ledger: no persister configured")

// Entry is a single high-score record.
type Entry struct {
	Score int
	Name  string
}

// Persister loads and saves the ordered entry list.
// The encoding is up to the implementation; only round-trip fidelity of the
// ordered pairs is required.
type Persister interface {
	LoadLedger() ([]Entry, error)
	SaveLedger(entries []Entry) error
}

// Ledger is an ordered top-N list, always sorted by descending score.
type Ledger struct {
	entries   []Entry
	max       int
	persister Persister
}

// New creates an empty ledger holding at most max entries.
func New(max int) *Ledger {
	if max < 1 {
		max = 1
	}
	return &Ledger{
		entries: make([]Entry, 0, max),
		max:     max,
	}
}

// Load creates a ledger backed by p and fills it from storage.
// A nil persister or a failed load yields an empty ledger; the load error is
// still returned so the caller can report it.
func Load(p Persister, max int) (*Ledger, error) {
	l := New(max)
	l.persister = p
	if p == nil {
		return l, nil
	}

	entries, err := p.LoadLedger()
	if err != nil {
		return l, fmt.Errorf("ledger: load failed, starting empty: %w", err)
	}
	for _, e := range entries {
		l.entries = append(l.entries, Entry{Score: e.Score, Name: CleanName(e.Name)})
	}
	l.normalize()
	return l, nil
}

// Qualifies reports whether score would enter the table: the table has a
// free slot, or score strictly beats the lowest entry.
func (l *Ledger) Qualifies(score int) bool {
	if len(l.entries) < l.max {
		return true
	}
	return score > l.entries[len(l.entries)-1].Score
}

// Insert adds an entry, keeps the table sorted and truncated, and returns the
// zero-based rank of the new entry, or -1 if it did not make the table.
func (l *Ledger) Insert(score int, name string) int {
	e := Entry{Score: score, Name: CleanName(name)}
	l.entries = append(l.entries, e)
	l.normalize()

	for i := range l.entries {
		if l.entries[i] == e {
			return i
		}
	}
	return -1
}

// Save writes the current entries through the persister.
func (l *Ledger) Save() error {
	if l.persister == nil {
		return ErrNoPersister
	}
	if err := l.persister.SaveLedger(l.Entries()); err != nil {
		return fmt.Errorf("ledger: save failed: %w", err)
	}
	return nil
}

// Entries returns a copy of the entries, highest first.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Max returns the capacity of the table.
func (l *Ledger) Max() int {
	return l.max
}

// Lowest returns the last entry and false if the ledger is empty.
func (l *Ledger) Lowest() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// normalize sorts descending by score, then by name descending for equal
// scores, and truncates to max.
func (l *Ledger) normalize() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		a, b := l.entries[i], l.entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Name > b.Name
	})
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
}

// CleanName trims whitespace, drops control characters and caps the length.
func CleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}
	return name
}

// MemoryPersister keeps the ledger in memory. Safe for concurrent use.
type MemoryPersister struct {
	mu      sync.Mutex
	entries []Entry
	saves   int
}

// NewMemoryPersister creates a memory persister preloaded with entries.
func NewMemoryPersister(entries ...Entry) *MemoryPersister {
	return &MemoryPersister{entries: append([]Entry(nil), entries...)}
}

// LoadLedger implements Persister.
func (m *MemoryPersister) LoadLedger() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

// SaveLedger implements Persister.
func (m *MemoryPersister) SaveLedger(entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]Entry(nil), entries...)
	m.saves++
	return nil
}

// Saves returns how many times SaveLedger was called.
func (m *MemoryPersister) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
