package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dangerzone/internal/config"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the difficulty tier table",
	Long: `Shows, for each difficulty tier, the score at which it starts and the
chance of spawning 0, 1, 2... dangers at every spawn decision.

The --difficulty and --config flags are taken into account.`,
	Args: cobra.NoArgs,
	RunE: runTiers,
}

func runTiers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	printTiers(cmd.OutOrStdout(), cfg)
	return nil
}

func printTiers(w io.Writer, cfg config.Config) {
	model := config.NewDifficultyModel(cfg.Difficulty)

	fmt.Fprintf(w, "Difficulty: %s (new tier every %.0f points, spawn check every %.2fs)\n",
		cfg.Difficulty.Preset, cfg.Difficulty.LevelUp, cfg.Dangers.Period)
	fmt.Fprintln(w)

	// Widest distribution decides the header
	maxCount := 0
	for i := 0; i < model.TierCount(); i++ {
		maxCount = max(maxCount, len(model.Thresholds(i)))
	}

	header := []string{fmt.Sprintf("  %-4s  %-8s", "Tier", "From")}
	for n := 0; n <= maxCount; n++ {
		header = append(header, fmt.Sprintf("%6s", fmt.Sprintf("P(%d)", n)))
	}
	fmt.Fprintln(w, strings.Join(header, ""))

	// Score at which each tier is first reached under the preset
	reached := make(map[int]float64)
	for score := 0.0; ; score += cfg.Difficulty.LevelUp {
		tier := model.Tier(score)
		if _, ok := reached[tier]; !ok {
			reached[tier] = score
		}
		if tier == model.TierCount()-1 || score > cfg.Difficulty.LevelUp*float64(model.TierCount()+1) {
			break
		}
	}

	for i := 0; i < model.TierCount(); i++ {
		from, ok := reached[i]
		fromText := "-"
		if ok {
			fromText = fmt.Sprintf("%.0f", from)
		}
		row := []string{fmt.Sprintf("  %-4d  %-8s", i+1, fromText)}
		for _, p := range model.Probabilities(i) {
			row = append(row, fmt.Sprintf("%5.0f%%", p*100))
		}
		fmt.Fprintln(w, strings.Join(row, ""))
	}
}
