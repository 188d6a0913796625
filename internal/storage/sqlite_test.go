package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dangerzone/internal/ledger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenUnwritable(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The parent "directory" is a regular file
	if _, err := Open(filepath.Join(blocker, "scores.db")); err == nil {
		t.Error("expected an error when the parent path is a file")
	}
}

func TestLedgerEmpty(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.LoadLedger()
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty ledger, got %v", entries)
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := []ledger.Entry{
		{Score: 500, Name: "zoe"},
		{Score: 300, Name: "amy"},
		{Score: 300, Name: "al"},
		{Score: 10, Name: "anonymous"},
	}
	if err := store.SaveLedger(want); err != nil {
		t.Fatalf("SaveLedger() failed: %v", err)
	}

	got, err := store.LoadLedger()
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestLedgerSaveReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLedger([]ledger.Entry{{Score: 1, Name: "a"}, {Score: 2, Name: "b"}}); err != nil {
		t.Fatalf("SaveLedger() failed: %v", err)
	}
	if err := store.SaveLedger([]ledger.Entry{{Score: 9, Name: "c"}}); err != nil {
		t.Fatalf("SaveLedger() failed: %v", err)
	}

	got, _ := store.LoadLedger()
	if len(got) != 1 || got[0].Name != "c" {
		t.Errorf("Expected only the second save to remain, got %v", got)
	}
}

func TestLedgerPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	l, err := ledger.Load(store, 7)
	if err != nil {
		t.Fatalf("ledger.Load() failed: %v", err)
	}
	l.Insert(120, "furry")
	if err := l.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	l, err = ledger.Load(store, 7)
	if err != nil {
		t.Fatalf("ledger.Load() after reopen failed: %v", err)
	}
	if e := l.Entries(); len(e) != 1 || e[0] != (ledger.Entry{Score: 120, Name: "furry"}) {
		t.Errorf("Expected [{120 furry}], got %v", e)
	}
}

func TestRoundsRecentOrder(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{10, 40, 25} {
		if _, err := store.SaveRound(score, time.Duration(i+1)*time.Second); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(rounds))
	}
	if rounds[0].Score != 25 || rounds[1].Score != 40 {
		t.Errorf("Expected newest first [25 40], got [%d %d]", rounds[0].Score, rounds[1].Score)
	}
	if rounds[0].Duration != 3*time.Second {
		t.Errorf("Expected duration 3s, got %v", rounds[0].Duration)
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Rounds != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", stats)
	}

	store.SaveRound(10, 2*time.Second)
	store.SaveRound(30, 4*time.Second)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 {
		t.Errorf("Expected 2 rounds, got %d", stats.Rounds)
	}
	if stats.BestScore != 30 {
		t.Errorf("Expected best 30, got %d", stats.BestScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %f", stats.AvgScore)
	}
	if stats.PlayTime != 6*time.Second {
		t.Errorf("Expected play time 6s, got %v", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestReset(t *testing.T) {
	store := openTestStore(t)
	store.SaveRound(10, time.Second)
	store.SaveLedger([]ledger.Entry{{Score: 10, Name: "a"}})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	entries, _ := store.LoadLedger()
	stats, _ := store.Stats()
	if len(entries) != 0 || stats.Rounds != 0 {
		t.Errorf("Expected empty store after Reset, got %d entries and %d rounds", len(entries), stats.Rounds)
	}
}
