// paintwar is a zero-player paint war that runs in the terminal: two balls
// bounce around a walled arena and repaint the blocks they hit.
//
// Usage:
//
//	paintwar list              - List available modes
//	paintwar play <mode>       - Watch a round
//	paintwar menu              - Pick modes and browse results interactively
//	paintwar sim <mode>        - Run a round headless and record the result
//	paintwar results <mode>    - Show past rounds for a mode
//	paintwar serve             - Start SSH server for remote viewers
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.paintwar/results.db)
//	--config <path>       - Load a custom config YAML
//	--preset <name>       - Ball speed: calm, normal, frantic
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-paintwar/internal/games/paintwar"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "paintwar",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paintwar",
	Short: "Paint War - two balls fight over territory in your terminal",
	Long: `Paint War is a zero-player terminal game. A white and a black ball
bounce inside a walled arena; in grid mode every block a ball touches
switches to its team.

Available commands:
  list     - Show all available modes
  play     - Watch a mode directly
  menu     - Interactive mode picker and results board
  sim      - Headless round, logs and records the tally
  results  - View past rounds
  serve    - Start SSH server for remote viewers

Examples:
  paintwar list
  paintwar play paintwar_grid
  paintwar play paintwar --preset frantic
  paintwar sim paintwar_grid --frames 3600 --seed 42
  paintwar serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paintwar/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "normal", "Ball speed preset: calm, normal, frantic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	paintwar.SetConfigPath(flagConfig)
	if err := paintwar.SetSpeedPreset(flagPreset); err != nil {
		return err
	}
	return nil
}
