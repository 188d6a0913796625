// dangerzone is a terminal endless runner: keep the furry ball airborne and
// clear of the spinning dangers.
//
// Usage:
//
//	dangerzone               - Play (same as "dangerzone play")
//	dangerzone play          - Play the game
//	dangerzone scores        - Show the high-score ledger and round statistics
//	dangerzone tiers         - Show the difficulty tier table
//	dangerzone config        - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible rounds
//	--db <path>            - Set database path (default: ~/.dangerzone/scores.db)
//	--config <path>        - Use a custom tuning YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Log destination while playing
//	--log-level <level>    - debug, info, warn or error
//	--mute                 - Disable sound
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newCLILogger().Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dangerzone",
	Short: "Furry Dangerzone - an endless runner in your terminal",
	Long: `Furry Dangerzone is a one-button endless runner. A furry ball falls
under gravity; press any key to bounce it upward. Spinning dangers scroll in
from the right, and touching one or leaving the screen ends the round.

Available commands:
  play     - Play the game (default)
  scores   - View the high-score ledger and statistics
  tiers    - Show the difficulty tiers
  config   - Print the effective configuration

Examples:
  dangerzone
  dangerzone play --difficulty hard
  dangerzone scores -i
  dangerzone config > ~/.dangerzone/configs/dangerzone.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.dangerzone/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "~/.dangerzone/dangerzone.log", "Log file used while the game is running")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(configCmd)
}
