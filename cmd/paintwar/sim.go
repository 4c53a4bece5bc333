package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-paintwar/internal/core"
	"github.com/vovakirdan/tui-paintwar/internal/games/paintwar"
	"github.com/vovakirdan/tui-paintwar/internal/platform/tui"
	"github.com/vovakirdan/tui-paintwar/internal/registry"
)

var (
	flagSimFrames  int
	flagSimFrameMS float64
	flagSimNoSave  bool
	flagSimEvery   int
)

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Run a round headless and record the result",
	Long: `Run a mode without a terminal UI. Every frame advances the world by
--frame-ms of simulated time, so a fixed --seed always produces the
same tally and state hash.

The round stops after --frames frames or when the mode's round limit
expires. Rounds that painted blocks are saved to the results database
unless --no-save is given.

Examples:
  paintwar sim paintwar_grid
  paintwar sim paintwar_grid --frames 3600 --seed 42
  paintwar sim paintwar --frames 600 --frame-ms 33.3 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 7200, "Maximum number of frames to run")
	simCmd.Flags().Float64Var(&flagSimFrameMS, "frame-ms", 1000.0/60, "Simulated milliseconds per frame")
	simCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not record the result")
	simCmd.Flags().IntVar(&flagSimEvery, "log-every", 600, "Log progress every N frames at debug level (0 = never)")
}

// timeSeed returns a seed from the wall clock.
func timeSeed() int64 {
	return time.Now().UnixNano()
}

func runSim(_ *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'paintwar list' to see available modes", mode)
	}
	if flagSimFrames <= 0 {
		return fmt.Errorf("invalid --frames %d: must be positive", flagSimFrames)
	}
	if flagSimFrameMS <= 0 {
		return fmt.Errorf("invalid --frame-ms %v: must be positive", flagSimFrameMS)
	}

	if err := checkConfig(); err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = timeSeed()
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	pw, _ := game.(*paintwar.Game)
	if pw != nil {
		defer pw.Close()
		if !pw.Runnable() {
			return fmt.Errorf("cannot build %s: %w", mode, pw.ConfigError())
		}
		if err := pw.ConfigError(); err != nil {
			logger.Warn("falling back to default config", "error", err)
		}
	}

	frameDur := time.Duration(flagSimFrameMS * float64(time.Millisecond))
	logger.Info("simulation started", "mode", mode, "seed", seed, "frames", flagSimFrames, "frame", frameDur)

	start := time.Now()
	subSteps := 0
	frames := 0
	for frames < flagSimFrames {
		result := game.Step(core.NewFrame(frameDur))
		frames++
		subSteps += result.SubSteps

		if flagSimEvery > 0 && frames%flagSimEvery == 0 && pw != nil {
			white, black := pw.Tally()
			logger.Debug("progress", "frame", frames, "white", white, "black", black, "substeps", result.SubSteps)
		}
		if result.State.GameOver {
			break
		}
	}

	fields := []any{
		"mode", mode,
		"frames", frames,
		"substeps", subSteps,
		"wall", time.Since(start).Round(time.Millisecond),
	}
	if pw != nil {
		snap := pw.Snapshot()
		white, black := pw.Tally()
		fields = append(fields,
			"white", white,
			"black", black,
			"winner", pw.Winner(),
			"simulated", fmt.Sprintf("%.1fs", pw.Elapsed()),
			"hash", fmt.Sprintf("%016x", snap.Hash()),
		)
	}
	logger.Info("simulation finished", fields...)

	if flagSimNoSave {
		return nil
	}
	res, ok := tui.RoundResult(game)
	if !ok {
		logger.Debug("nothing to record", "mode", mode)
		return nil
	}
	store := openStore()
	if store == nil {
		return nil
	}
	defer store.Close()

	id, err := store.SaveResult(res)
	if err != nil {
		return err
	}
	logger.Info("result saved", "id", id, "db", flagDBPath)
	return nil
}
