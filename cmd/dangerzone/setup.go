package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dangerzone/internal/config"
	"github.com/vovakirdan/tui-dangerzone/internal/ledger"
	"github.com/vovakirdan/tui-dangerzone/internal/storage"
)

// loadConfig loads the tuning file and applies the --difficulty override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, flagDifficulty); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openLedger opens the score database and loads the ledger from it. When the
// database is unavailable the game still runs with an in-memory ledger and a
// nil store.
func openLedger(cfg config.Config, logger *log.Logger) (*storage.Store, *ledger.Ledger) {
	var persister ledger.Persister
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
		persister = ledger.NewMemoryPersister()
		store = nil
	} else {
		persister = store
	}

	l, err := ledger.Load(persister, cfg.Session.MaxScores)
	if err != nil {
		logger.Warn("cannot load high scores", "err", err)
	}
	return store, l
}
