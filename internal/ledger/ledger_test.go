package ledger

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

type failingPersister struct {
	loadErr error
	saveErr error
}

func (f failingPersister) LoadLedger() ([]Entry, error) { return nil, f.loadErr }
func (f failingPersister) SaveLedger([]Entry) error     { return f.saveErr }

func fullLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New(7)
	for _, s := range []int{700, 600, 500, 400, 300, 200, 100} {
		l.Insert(s, "p")
	}
	if l.Len() != 7 {
		t.Fatalf("setup: Len() = %d, expected 7", l.Len())
	}
	return l
}

func TestQualifiesStrictlyGreater(t *testing.T) {
	l := fullLedger(t)

	if l.Qualifies(100) {
		t.Error("a tie with the lowest entry must not qualify")
	}
	if !l.Qualifies(101) {
		t.Error("101 should beat the lowest entry of 100")
	}
}

func TestInsertEvictsLowest(t *testing.T) {
	l := fullLedger(t)

	rank := l.Insert(101, "new")
	if rank != 6 {
		t.Errorf("Insert() rank = %d, expected 6", rank)
	}
	if l.Len() != 7 {
		t.Errorf("Len() = %d, expected 7", l.Len())
	}
	lowest, _ := l.Lowest()
	if lowest.Score != 101 || lowest.Name != "new" {
		t.Errorf("Lowest() = %+v, expected {101 new}", lowest)
	}
}

func TestInsertNotQualifying(t *testing.T) {
	l := fullLedger(t)

	if rank := l.Insert(50, "late"); rank != -1 {
		t.Errorf("Insert() rank = %d, expected -1", rank)
	}
	if l.Len() != 7 {
		t.Errorf("Len() = %d, expected 7", l.Len())
	}
}

func TestQualifiesWithFreeSlot(t *testing.T) {
	l := New(7)
	if !l.Qualifies(0) {
		t.Error("an empty ledger accepts any score")
	}
}

func TestLedgerInvariantRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	l := New(7)

	for i := 0; i < 500; i++ {
		l.Insert(rng.Intn(1000), "x")

		entries := l.Entries()
		if len(entries) > 7 {
			t.Fatalf("ledger grew to %d entries", len(entries))
		}
		for j := 1; j < len(entries); j++ {
			if entries[j-1].Score < entries[j].Score {
				t.Fatalf("ledger not sorted descending: %v", entries)
			}
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	p := NewMemoryPersister(
		Entry{Score: 10, Name: "a"},
		Entry{Score: 30, Name: "b"},
		Entry{Score: 20, Name: "c"},
		Entry{Score: 40, Name: "d"},
	)

	l, err := Load(p, 3)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got := l.Entries()
	if len(got) != 3 || got[0].Score != 40 || got[1].Score != 30 || got[2].Score != 20 {
		t.Errorf("Load() entries = %v, expected 40/30/20", got)
	}
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	l, err := Load(failingPersister{loadErr: errors.New("corrupt")}, 7)
	if err == nil {
		t.Error("Load() should report the underlying error")
	}
	if l == nil || l.Len() != 0 {
		t.Fatal("Load() should still return an empty ledger")
	}
	if !l.Qualifies(0) {
		t.Error("empty ledger should accept any score")
	}
}

func TestSave(t *testing.T) {
	p := NewMemoryPersister()
	l, _ := Load(p, 7)
	l.Insert(42, "neo")

	if err := l.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	stored, _ := p.LoadLedger()
	if len(stored) != 1 || stored[0] != (Entry{Score: 42, Name: "neo"}) {
		t.Errorf("persisted entries = %v", stored)
	}
	if p.Saves() != 1 {
		t.Errorf("Saves() = %d, expected 1", p.Saves())
	}
}

func TestSaveErrors(t *testing.T) {
	if err := New(7).Save(); !errors.Is(err, ErrNoPersister) {
		t.Errorf("Save() without persister = %v, expected ErrNoPersister", err)
	}

	diskFull := errors.New("disk full")
	l, _ := Load(failingPersister{saveErr: diskFull}, 7)
	if err := l.Save(); !errors.Is(err, diskFull) {
		t.Errorf("Save() = %v, expected wrapped disk full", err)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{in: "  ace  ", expected: "ace"},
		{in: "", expected: DefaultName},
		{in: "\t\n", expected: DefaultName},
		{in: "a\x07b", expected: "ab"},
		{in: strings.Repeat("z", 40), expected: strings.Repeat("z", MaxNameLen)},
	}

	for _, tc := range tests {
		if got := CleanName(tc.in); got != tc.expected {
			t.Errorf("CleanName(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
