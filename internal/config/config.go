// Package config provides YAML-based configuration loading, validation and
// speed presets for the paint war.
package config

// Mode identifiers, also used as registry IDs and in the results table.
const (
	ModeClassic = "paintwar"
	ModeGrid    = "paintwar_grid"
)

// Sub-step policy names.
const (
	PolicyFixed    = "fixed"
	PolicyAdaptive = "adaptive"
)

// Ball spawn points.
const (
	SpawnTop    = "top"    // touching the ceiling
	SpawnBottom = "bottom" // touching the floor
	SpawnUpper  = "upper"  // a quarter of the way down
	SpawnLower  = "lower"  // three quarters of the way down
	SpawnCenter = "center"
)

// Generated layout patterns, used when a grid has no explicit layout.
const (
	PatternSplit   = "split"        // black top half, white bottom half
	PatternColumns = "columns"      // black left half, white right half
	PatternChecker = "checkerboard" // 'b' where row+col is even
)

// PaintWarConfig contains all configuration for the paint war.
type PaintWarConfig struct {
	Arena   ArenaConfig           `yaml:"arena"`
	Balls   BallsConfig           `yaml:"balls"`
	Physics PhysicsConfig         `yaml:"physics"`
	Modes   map[string]ModeConfig `yaml:"modes"`
}

// ArenaConfig defines the walled playfield in world units.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// BallsConfig defines both balls.
type BallsConfig struct {
	Radius float64    `yaml:"radius"`
	White  BallConfig `yaml:"white"`
	Black  BallConfig `yaml:"black"`
}

// BallConfig defines one ball's starting kinematics.
type BallConfig struct {
	Spawn    string         `yaml:"spawn"`
	Velocity VelocityConfig `yaml:"velocity"`
}

// VelocityConfig is either a fixed vector or a per-axis integer range.
type VelocityConfig struct {
	X     Range `yaml:"x"`
	Y     Range `yaml:"y"`
	Fixed *Vec  `yaml:"fixed,omitempty"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Vec is a 2D vector in units per tick.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PhysicsConfig tunes the physics engine.
type PhysicsConfig struct {
	TickRate   float64 `yaml:"tick_rate"`  // base ticks per second of wall-clock time
	Iterations int     `yaml:"iterations"` // solver iterations per step, 0 = engine default
}

// ModeConfig defines one game mode.
type ModeConfig struct {
	Title        string            `yaml:"title"`
	Grid         GridConfig        `yaml:"grid"`
	SubSteps     SubStepConfig     `yaml:"substeps"`
	Spawn        map[string]string `yaml:"spawn,omitempty"` // team -> spawn, overrides balls.*.spawn
	RoundSeconds int               `yaml:"round_seconds"`   // 0 = endless
}

// GridConfig defines the block grid. Layout rows are strings of 'b'/'w'.
type GridConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Rows     int      `yaml:"rows"`
	Cols     int      `yaml:"cols"`
	CellSize float64  `yaml:"cell_size"`
	Layout   []string `yaml:"layout,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`
}

// SubStepConfig selects and tunes the sub-step policy.
type SubStepConfig struct {
	Policy string       `yaml:"policy"`
	Count  int          `yaml:"count"` // fixed policy
	Tiers  []TierConfig `yaml:"tiers"` // adaptive policy, ascending max_speed
	Above  int          `yaml:"above"` // adaptive policy, speeds above the last tier
}

// TierConfig maps speeds up to and including MaxSpeed to Steps sub-steps.
type TierConfig struct {
	MaxSpeed float64 `yaml:"max_speed"`
	Steps    int     `yaml:"steps"`
}

// Mode returns the named mode and whether it exists.
func (c PaintWarConfig) Mode(id string) (ModeConfig, bool) {
	m, ok := c.Modes[id]
	return m, ok
}

// Ball returns the config for the named team ("white" or "black").
func (c PaintWarConfig) Ball(team string) BallConfig {
	if team == "black" {
		return c.Balls.Black
	}
	return c.Balls.White
}

// SpawnFor returns the spawn point of a team's ball in this mode.
func (m ModeConfig) SpawnFor(team string, fallback string) string {
	if s, ok := m.Spawn[team]; ok && s != "" {
		return s
	}
	return fallback
}

// ResolvedLayout returns the explicit layout, or generates one from Pattern.
func (g GridConfig) ResolvedLayout() []string {
	if len(g.Layout) > 0 {
		return g.Layout
	}
	return GenerateLayout(g.Pattern, g.Rows, g.Cols)
}

// GenerateLayout builds a rows x cols layout for a named pattern.
// Unknown patterns yield nil.
func GenerateLayout(pattern string, rows, cols int) []string {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	var token func(r, c int) byte
	switch pattern {
	case PatternSplit:
		token = func(r, _ int) byte {
			if r < rows/2 {
				return 'b'
			}
			return 'w'
		}
	case PatternColumns:
		token = func(_, c int) byte {
			if c < cols/2 {
				return 'b'
			}
			return 'w'
		}
	case PatternChecker:
		token = func(r, c int) byte {
			if (r+c)%2 == 0 {
				return 'b'
			}
			return 'w'
		}
	default:
		return nil
	}

	layout := make([]string, rows)
	row := make([]byte, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			row[c] = token(r, c)
		}
		layout[r] = string(row)
	}
	return layout
}
