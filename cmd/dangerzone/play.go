package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dangerzone/internal/audio"
	"github.com/vovakirdan/tui-dangerzone/internal/core"
	"github.com/vovakirdan/tui-dangerzone/internal/games/dangerzone"
	"github.com/vovakirdan/tui-dangerzone/internal/platform/tui"
)

var flagShowTier bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Furry Dangerzone.

Controls:
  Any key    - Start the round, then bounce upward
  Enter      - Save your name after a high score
  Ctrl+S     - Save a text screenshot
  Esc/Ctrl+C - Quit

Difficulty options:
  easy   - Start at the first tier, progress every 150 points
  normal - Same tiers as easy
  hard   - Start two tiers in
  fixed  - Never leave the starting tier

Examples:
  dangerzone play
  dangerzone play --difficulty hard
  dangerzone play --seed 42 --mute
  dangerzone play --config ./my-dangerzone.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagShowTier, "show-tier", false, "Show the current difficulty tier in the HUD")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if f, err := openLogFile(flagLogFile); err != nil {
		newCLILogger().Warn("logging disabled", "err", err)
	} else {
		defer f.Close()
		logger = newLogger(f)
	}

	store, l := openLedger(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	sink, err := audio.Open(!flagMute, logger)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer sink.Close()

	runtimeCfg := core.DefaultConfig()
	runtimeCfg.Seed = flagSeed
	if runtimeCfg.Seed == 0 {
		runtimeCfg.Seed = time.Now().UnixNano()
	}
	if flagFPS > 0 {
		runtimeCfg.TickRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtimeCfg.ScreenW = w
		runtimeCfg.ScreenH = h
	}
	seed := runtimeCfg.Seed

	session := dangerzone.NewSession(cfg, l, dangerzone.Options{
		Seed:   seed,
		Audio:  sink,
		Logger: logger,
	})

	opts := tui.Options{
		Config:   runtimeCfg,
		Logger:   logger,
		ShowTier: flagShowTier,
	}
	if store != nil {
		opts.Rounds = store
	}

	logger.Info("starting", "seed", seed, "difficulty", cfg.Difficulty.Preset, "fps", runtimeCfg.TickRate)
	if err := tui.Run(session, opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
