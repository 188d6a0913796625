package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dangerzone/internal/platform/tui"
	"github.com/vovakirdan/tui-dangerzone/internal/storage"
)

var (
	flagInteractive bool
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and round statistics",
	Long: `Display the high-score ledger and statistics over all recorded rounds.

Examples:
  dangerzone scores
  dangerzone scores --interactive
  dangerzone scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all scores and rounds")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.Reset(); err != nil {
			return err
		}
		newCLILogger().Info("scores reset", "db", flagDBPath)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(cmd.OutOrStdout(), store)
}

// printScores writes the ledger and statistics as plain text.
func printScores(w io.Writer, src tui.ScoreSource) error {
	entries, err := src.LoadLedger()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Furry Dangerzone")
	fmt.Fprintln(w)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'dangerzone play' to set the first high score!")
	} else {
		fmt.Fprintf(w, "  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
		fmt.Fprintf(w, "  %-4s  %-16s  %s\n", "----", "----", "-----")
		for i, e := range entries {
			fmt.Fprintf(w, "  %-4d  %-16s  %d\n", i+1, e.Name, e.Score)
		}
	}

	stats, err := src.Stats()
	if err != nil {
		return err
	}
	if stats.Rounds > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rounds: %d  Best: %d  Average: %.1f\n", stats.Rounds, stats.BestScore, stats.AvgScore)
		fmt.Fprintf(w, "Time played: %s  Last played: %s\n",
			stats.PlayTime.Round(time.Second), stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
