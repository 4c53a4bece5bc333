// Package paintwar implements the zero-player paint war: two balls bounce
// inside a walled arena and repaint the grid blocks they hit.
package paintwar

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/vovakirdan/tui-paintwar/internal/config"
	"github.com/vovakirdan/tui-paintwar/internal/core"
	"github.com/vovakirdan/tui-paintwar/internal/physics"
	"github.com/vovakirdan/tui-paintwar/internal/registry"
)

// A long frame is advanced in slices of at most sliceTicks, each split by
// the sub-step policy, so its sub-steps stay as short as a normal frame's
// and no simulated time is dropped.
const sliceTicks = 2.0

// maxCatchUpTicks bounds how much time a single frame may replay, which
// only matters after the process was suspended.
const maxCatchUpTicks = 300.0

// configPath stores the custom config path set via CLI
var configPath string

// speedPreset stores the speed preset set via CLI
var speedPreset = config.SpeedNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the speed preset applied on every Reset.
func SetSpeedPreset(preset string) error {
	p, err := config.ParseSpeedPreset(preset)
	if err != nil {
		return err
	}
	speedPreset = p
	return nil
}

// Game implements the paint war for one mode.
type Game struct {
	id string

	// Configuration
	runtime  core.RuntimeConfig
	override *config.PaintWarConfig
	preset   config.SpeedPreset
	cfg      config.PaintWarConfig
	mode     config.ModeConfig
	loadErr  error

	// Simulation
	world    *physics.World
	entities *Entities
	driver   Driver
	painter  *Painter
	subSteps int

	// Round state
	white    int
	black    int
	frames   int
	ticks    float64
	paused   bool
	gameOver bool
}

// New creates a game for the given mode id.
func New(id string) *Game {
	return &Game{id: id}
}

// NewWithConfig creates a game that ignores the config search path.
func NewWithConfig(id string, cfg config.PaintWarConfig) *Game {
	return &Game{id: id, override: &cfg}
}

// ID returns the mode id.
func (g *Game) ID() string {
	return g.id
}

// SetPreset overrides the package speed preset for this game only. It takes
// effect on the next Reset.
func (g *Game) SetPreset(p config.SpeedPreset) {
	g.preset = p
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode.Title != "" {
		return g.mode.Title
	}
	switch g.id {
	case config.ModeGrid:
		return "Paint War (Grid)"
	default:
		return "Paint War"
	}
}

// Reset loads the configuration and builds a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.world != nil {
		g.world.Close()
	}

	// Load game config
	var cfg config.PaintWarConfig
	if g.override != nil {
		cfg = *g.override
		g.loadErr = nil
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultPaintWarConfig()
		}
		cfg, g.loadErr = loaded, err
	}
	preset := speedPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplySpeedPreset(&cfg, preset)
	g.cfg = cfg

	mode, ok := cfg.Mode(g.id)
	if !ok {
		mode = config.DefaultPaintWarConfig().Modes[config.ModeClassic]
		if g.loadErr == nil {
			g.loadErr = fmt.Errorf("paintwar: mode %q not configured", g.id)
		}
	}
	g.mode = mode

	policy, err := NewPolicy(mode.SubSteps)
	if err != nil {
		policy = DefaultAdaptivePolicy()
		if g.loadErr == nil {
			g.loadErr = err
		}
	}
	g.driver = Driver{Policy: policy}

	g.white, g.black = 0, 0
	g.subSteps = 0
	g.frames = 0
	g.ticks = 0
	g.paused = false
	g.gameOver = false

	rng := rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- simulation RNG, not crypto
	if err := g.build(rng); err != nil {
		// A half-built arena never runs.
		g.world.Close()
		g.world = nil
		g.entities = nil
		g.painter = nil
		g.loadErr = err
	}
}

// build creates the world and registers every entity in draw order.
func (g *Game) build(rng *rand.Rand) error {
	arena := g.cfg.Arena
	w, h, t := arena.Width, arena.Height, arena.WallThickness
	r := g.cfg.Balls.Radius

	g.world = physics.NewWorld(physics.WorldOptions{Iterations: g.cfg.Physics.Iterations})
	g.entities = NewEntities()
	g.painter = nil

	walls := []WallEntity{
		{ID: IDLeftWall, Body: physics.NewWall(IDLeftWall, t/2, h/2, t, h)},
		{ID: IDRightWall, Body: physics.NewWall(IDRightWall, w-t/2, h/2, t, h)},
		{ID: IDCeiling, Body: physics.NewWall(IDCeiling, w/2, t/2, w, t)},
		{ID: IDFloor, Body: physics.NewWall(IDFloor, w/2, h-t/2, w, t)},
	}
	for _, wall := range walls {
		g.world.Add(wall.Body)
		if err := g.entities.Add(wall); err != nil {
			return err
		}
	}

	// White draws its velocity first.
	for _, team := range []physics.Team{physics.TeamWhite, physics.TeamBlack} {
		bc := g.cfg.Ball(team.String())
		x, y := spawnPoint(g.mode.SpawnFor(team.String(), bc.Spawn), w, h, r, t)
		ball := physics.NewBall(team, x, y, r)
		ball.SetVelocity(velocitySpec(bc.Velocity).Resolve(rng))

		id := IDWhiteBall
		if team == physics.TeamBlack {
			id = IDBlackBall
		}
		g.world.Add(ball)
		if err := g.entities.Add(BallEntity{ID: id, Team: team, Body: ball}); err != nil {
			return err
		}
	}

	if !g.mode.Grid.Enabled {
		return nil
	}

	gc := g.mode.Grid
	layout, err := ParseLayout(gc.ResolvedLayout())
	if err != nil {
		return err
	}
	blocks, err := BuildGrid(gc.Rows, gc.Cols, gc.CellSize, layout)
	if err != nil {
		return err
	}
	g.world.Add(blocks...)
	if err := g.entities.Add(GridEntity{ID: IDGrid, Rows: gc.Rows, Cols: gc.Cols, CellSize: gc.CellSize, Blocks: blocks}); err != nil {
		return err
	}

	for _, b := range blocks {
		g.count(b.Color, 1)
	}

	g.painter = &Painter{OnPaint: func(_ *physics.Body, from, to physics.Team) {
		g.count(from, -1)
		g.count(to, 1)
	}}
	g.world.OnCollisionBegin(g.painter)
	return nil
}

// spawnPoint resolves a named spawn to world coordinates.
func spawnPoint(spawn string, w, h, r, t float64) (float64, float64) {
	x := w / 2
	switch spawn {
	case config.SpawnTop:
		return x, r + t
	case config.SpawnUpper:
		return x, h / 4
	case config.SpawnLower:
		return x, h * 3 / 4
	case config.SpawnCenter:
		return x, h / 2
	default:
		return x, h - r - t
	}
}

func velocitySpec(vc config.VelocityConfig) physics.VelocitySpec {
	spec := physics.VelocitySpec{
		X: physics.Range{Min: vc.X.Min, Max: vc.X.Max},
		Y: physics.Range{Min: vc.Y.Min, Max: vc.Y.Max},
	}
	if vc.Fixed != nil {
		spec.Fixed = &cp.Vector{X: vc.Fixed.X, Y: vc.Fixed.Y}
	}
	return spec
}

func (g *Game) count(team physics.Team, delta int) {
	if team == physics.TeamBlack {
		g.black += delta
	} else {
		g.white += delta
	}
}

// Step advances the world by the frame's elapsed time, split into sub-steps.
func (g *Game) Step(f core.Frame) core.StepResult {
	// Handle restart
	if f.Input.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if f.Input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	dt := min(f.Elapsed.Seconds()*g.cfg.Physics.TickRate, maxCatchUpTicks)
	n := 0
	for done := 0.0; done < dt; done += sliceTicks {
		n += g.driver.Advance(g.world, min(sliceTicks, dt-done))
	}
	g.subSteps = n
	g.frames++
	g.ticks += dt

	if limit := g.mode.RoundSeconds; limit > 0 && g.seconds() >= float64(limit) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), SubSteps: n}
}

// seconds converts simulated ticks back to round time.
func (g *Game) seconds() float64 {
	if g.cfg.Physics.TickRate <= 0 {
		return 0
	}
	return g.ticks / g.cfg.Physics.TickRate
}

// State returns the current game state. The score is the leading team's
// block count.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    max(g.white, g.black),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Tally returns the number of white and black blocks.
func (g *Game) Tally() (white, black int) {
	return g.white, g.black
}

// Winner returns "white", "black" or "draw" by block count.
func (g *Game) Winner() string {
	switch {
	case g.white > g.black:
		return physics.TeamWhite.String()
	case g.black > g.white:
		return physics.TeamBlack.String()
	default:
		return "draw"
	}
}

// Runnable reports whether the last Reset built a complete arena.
func (g *Game) Runnable() bool {
	return g.world != nil
}

// Frames returns how many frames have advanced the world since Reset.
func (g *Game) Frames() int {
	return g.frames
}

// Elapsed returns the simulated round time in seconds.
func (g *Game) Elapsed() float64 {
	return g.seconds()
}

// Mode returns the active mode configuration.
func (g *Game) Mode() config.ModeConfig {
	return g.mode
}

// Entities returns the arena contents in draw order.
func (g *Game) Entities() *Entities {
	return g.entities
}

// World returns the session's physics world.
func (g *Game) World() *physics.World {
	return g.world
}

// ConfigError reports a problem met while loading configuration on the
// last Reset. The game still runs on defaults when it is set.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Close releases the world.
func (g *Game) Close() {
	if g.world != nil {
		g.world.Close()
	}
}

// Register both modes with the registry
func init() {
	registry.Register(config.ModeClassic, func() registry.Game {
		return New(config.ModeClassic)
	})
	registry.Register(config.ModeGrid, func() registry.Game {
		return New(config.ModeGrid)
	})
}
