package config

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLayoutMismatch reports a layout whose shape differs from rows x cols.
	ErrLayoutMismatch = errors.New("layout does not match grid dimensions")
)

// Validate checks geometry, ranges, sub-step policies and grid layouts.
// It fails on the first problem found.
func (c PaintWarConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return invalid("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.WallThickness <= 0 {
		return invalid("wall thickness must be positive, got %g", c.Arena.WallThickness)
	}
	if c.Balls.Radius <= 0 {
		return invalid("ball radius must be positive, got %g", c.Balls.Radius)
	}
	if 2*(c.Balls.Radius+c.Arena.WallThickness) > min(c.Arena.Width, c.Arena.Height) {
		return invalid("ball radius %g does not fit the arena", c.Balls.Radius)
	}
	if c.Physics.TickRate <= 0 {
		return invalid("tick rate must be positive, got %g", c.Physics.TickRate)
	}
	if c.Physics.Iterations < 0 {
		return invalid("iterations must not be negative, got %d", c.Physics.Iterations)
	}

	for _, team := range []string{"white", "black"} {
		if err := c.Ball(team).validate(); err != nil {
			return fmt.Errorf("%s ball: %w", team, err)
		}
	}

	if len(c.Modes) == 0 {
		return invalid("no modes defined")
	}
	ids := make([]string, 0, len(c.Modes))
	for id := range c.Modes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := c.Modes[id].validate(); err != nil {
			return fmt.Errorf("mode %s: %w", id, err)
		}
	}
	return nil
}

func (b BallConfig) validate() error {
	if !validSpawn(b.Spawn) {
		return invalid("unknown spawn %q", b.Spawn)
	}
	if b.Velocity.Fixed != nil {
		return nil
	}
	if b.Velocity.X.Min > b.Velocity.X.Max {
		return invalid("velocity x range [%d,%d] is inverted", b.Velocity.X.Min, b.Velocity.X.Max)
	}
	if b.Velocity.Y.Min > b.Velocity.Y.Max {
		return invalid("velocity y range [%d,%d] is inverted", b.Velocity.Y.Min, b.Velocity.Y.Max)
	}
	return nil
}

func (m ModeConfig) validate() error {
	if m.RoundSeconds < 0 {
		return invalid("round_seconds must not be negative, got %d", m.RoundSeconds)
	}
	for team, spawn := range m.Spawn {
		if team != "white" && team != "black" {
			return invalid("spawn override for unknown team %q", team)
		}
		if !validSpawn(spawn) {
			return invalid("unknown spawn %q", spawn)
		}
	}
	if err := m.SubSteps.Validate(); err != nil {
		return err
	}
	if !m.Grid.Enabled {
		return nil
	}

	g := m.Grid
	if g.Rows <= 0 || g.Cols <= 0 {
		return invalid("grid must have positive rows and cols, got %dx%d", g.Rows, g.Cols)
	}
	if g.CellSize <= 0 {
		return invalid("grid cell size must be positive, got %g", g.CellSize)
	}
	if len(g.Layout) == 0 {
		switch g.Pattern {
		case PatternSplit, PatternColumns, PatternChecker:
		default:
			return invalid("grid needs a layout or a known pattern, got %q", g.Pattern)
		}
	}
	return CheckLayout(g.ResolvedLayout(), g.Rows, g.Cols)
}

// Validate checks that the sub-step config describes a usable policy.
func (s SubStepConfig) Validate() error {
	switch s.Policy {
	case PolicyFixed:
		if s.Count <= 0 {
			return invalid("fixed sub-step count must be positive, got %d", s.Count)
		}
	case PolicyAdaptive:
		if len(s.Tiers) == 0 {
			return invalid("adaptive policy needs at least one tier")
		}
		for i, t := range s.Tiers {
			if t.Steps <= 0 {
				return invalid("tier %d: steps must be positive, got %d", i, t.Steps)
			}
			if i > 0 && t.MaxSpeed <= s.Tiers[i-1].MaxSpeed {
				return invalid("tier %d: max_speed %g is not above %g", i, t.MaxSpeed, s.Tiers[i-1].MaxSpeed)
			}
		}
		if s.Above <= 0 {
			return invalid("adaptive above must be positive, got %d", s.Above)
		}
	default:
		return invalid("unknown sub-step policy %q", s.Policy)
	}
	return nil
}

// CheckLayout verifies that layout has exactly rows rows of exactly cols
// 'b'/'w' tokens.
func CheckLayout(layout []string, rows, cols int) error {
	if len(layout) != rows {
		return fmt.Errorf("%w: want %d rows, got %d", ErrLayoutMismatch, rows, len(layout))
	}
	for r, row := range layout {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d: want %d cols, got %d", ErrLayoutMismatch, r, cols, len(row))
		}
		for c := 0; c < len(row); c++ {
			if row[c] != 'b' && row[c] != 'w' {
				return invalid("layout (%d,%d): unknown token %q", r, c, row[c])
			}
		}
	}
	return nil
}

func validSpawn(s string) bool {
	switch s {
	case SpawnTop, SpawnBottom, SpawnUpper, SpawnLower, SpawnCenter:
		return true
	}
	return false
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
