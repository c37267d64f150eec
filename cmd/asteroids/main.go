// asteroids is a terminal Asteroids game built on a fixed-timestep
// simulation core.
//
// Usage:
//
//	asteroids [game]         - Play (default game: asteroids)
//	asteroids play [game]    - Play a game
//	asteroids sim            - Run a headless scripted simulation
//	asteroids list           - List available game variants
//	asteroids config         - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom YAML configuration
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids [game]",
	Short: "Asteroids - shoot rocks in your terminal",
	Long: `Asteroids is a terminal rendition of the arcade classic: rotate, thrust
and fire at jagged asteroids that split into smaller pieces when hit.

Available commands:
  play     - Play a game variant (default)
  sim      - Run a headless simulation with a scripted pilot
  list     - Show all available game variants
  config   - Print the default configuration

Examples:
  asteroids
  asteroids play asteroids_classic
  asteroids --seed 42 --log-file /tmp/asteroids.log --log-level debug
  asteroids sim --ticks 600
  asteroids config > ~/.asteroids/configs/asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
