package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-paintwar/internal/config"
	"github.com/vovakirdan/tui-paintwar/internal/core"
	"github.com/vovakirdan/tui-paintwar/internal/platform/tui"
	"github.com/vovakirdan/tui-paintwar/internal/registry"
	"github.com/vovakirdan/tui-paintwar/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Watch a mode",
	Long: `Start a round of the specified mode.

Controls:
  P/Space    - Pause/resume
  R          - Restart with a new seed
  Ctrl+S     - Save a screenshot to ~/.paintwar/screenshots
  Esc/B      - Leave the round
  Q/Ctrl+C   - Quit

Speed presets:
  calm     - half the configured velocities
  normal   - the configured velocities
  frantic  - one and a half times the configured velocities

Examples:
  paintwar play paintwar
  paintwar play paintwar_grid --preset calm
  paintwar play paintwar_grid --seed 42
  paintwar play paintwar_grid --config ./my-paintwar.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and the global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// checkConfig loads the --config file up front so a broken file stops the
// command instead of silently running the defaults.
func checkConfig() error {
	if flagConfig == "" {
		return nil
	}
	if _, err := config.Load(flagConfig); err != nil {
		return err
	}
	logger.Debug("config loaded", "path", flagConfig)
	return nil
}

// openStore opens the results database. Rounds still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'paintwar list' to see available modes", mode)
	}
	if err := checkConfig(); err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running %s: %w", mode, err)
	}
	return nil
}
