package config

import (
	_ "embed"
)

//go:embed defaults/paintwar.yaml
var defaultPaintWarYAML []byte

// DefaultPaintWarConfig returns the default paint war configuration.
// It mirrors defaults/paintwar.yaml.
func DefaultPaintWarConfig() PaintWarConfig {
	return PaintWarConfig{
		Arena: ArenaConfig{
			Width:         300,
			Height:        300,
			WallThickness: 1,
		},
		Balls: BallsConfig{
			Radius: 7.5,
			White: BallConfig{
				Spawn: SpawnBottom,
				Velocity: VelocityConfig{
					X: Range{Min: -5, Max: 5},
					Y: Range{Min: -10, Max: -5},
				},
			},
			Black: BallConfig{
				Spawn: SpawnTop,
				Velocity: VelocityConfig{
					X: Range{Min: -5, Max: 5},
					Y: Range{Min: 5, Max: 10},
				},
			},
		},
		Physics: PhysicsConfig{
			TickRate:   60,
			Iterations: 10,
		},
		Modes: map[string]ModeConfig{
			ModeClassic: {
				Title: "Paint War",
				SubSteps: SubStepConfig{
					Policy: PolicyAdaptive,
					Tiers: []TierConfig{
						{MaxSpeed: 5, Steps: 1},
						{MaxSpeed: 10, Steps: 2},
					},
					Above: 4,
				},
			},
			ModeGrid: {
				Title: "Paint War (Grid)",
				Grid: GridConfig{
					Enabled:  true,
					Rows:     20,
					Cols:     20,
					CellSize: 15,
					Pattern:  PatternSplit,
				},
				SubSteps: SubStepConfig{
					Policy: PolicyFixed,
					Count:  50,
				},
				RoundSeconds: 120,
			},
		},
	}
}
