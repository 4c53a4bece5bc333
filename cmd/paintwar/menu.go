package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-paintwar/internal/config"
	"github.com/vovakirdan/tui-paintwar/internal/games/paintwar"
	"github.com/vovakirdan/tui-paintwar/internal/platform/tui"
	"github.com/vovakirdan/tui-paintwar/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes and browse results interactively",
	Long: `Start Paint War in interactive menu mode.

Pick a mode, then a speed preset. Leaving a round returns to the menu.
Tab opens the results board.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Results board
  Q            - Quit

Examples:
  paintwar menu
  paintwar menu --fps 30
  paintwar menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	preset, err := config.ParseSpeedPreset(flagPreset)
	if err != nil {
		return err
	}
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsResult {
			goBack, err := tui.RunResults(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		mode := menuResult.GameID
		if mode == "" {
			return nil
		}

		game, err := registry.Create(mode)
		if err != nil {
			logger.Error("cannot create mode", "mode", mode, "error", err)
			continue
		}

		selected, err := tui.RunPresetSelector(game.Title(), preset, cfg)
		if err != nil {
			return err
		}
		if selected == nil {
			continue
		}
		preset = *selected
		if err := paintwar.SetSpeedPreset(string(preset)); err != nil {
			return err
		}

		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = timeSeed()
		}
		logger.Debug("round started", "mode", mode, "preset", preset, "seed", runCfg.Seed)
		if err := tui.Run(game, store, runCfg); err != nil {
			logger.Error("round failed", "mode", mode, "error", err)
		}
	}
}
