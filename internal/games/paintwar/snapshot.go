package paintwar

import (
	"math"

	"github.com/vovakirdan/tui-paintwar/internal/physics"
)

// Snapshot contains the observable game state for determinism checks and
// result recording. Uses primitive types only for stable serialization.
type Snapshot struct {
	Mode     string
	Frames   int
	Steps    int
	Ticks    float64
	Paused   bool
	GameOver bool

	// Ball positions and velocities: X, Y, VX, VY per ball, white first.
	BallData []float64

	// Block teams in row-major order as layout tokens.
	Blocks string

	White int
	Black int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:     g.id,
		Frames:   g.frames,
		Ticks:    g.ticks,
		Paused:   g.paused,
		GameOver: g.gameOver,
		White:    g.white,
		Black:    g.black,
	}
	if g.world != nil {
		snap.Steps = g.world.Steps()
	}
	if g.entities == nil {
		return snap
	}

	for _, team := range []physics.Team{physics.TeamWhite, physics.TeamBlack} {
		ball := g.entities.Ball(team)
		if ball == nil {
			continue
		}
		p, v := ball.Position(), ball.Velocity()
		snap.BallData = append(snap.BallData, p.X, p.Y, v.X, v.Y)
	}

	if grid, ok := g.entities.Grid(); ok {
		buf := make([]byte, len(grid.Blocks))
		for i, b := range grid.Blocks {
			buf[i] = b.Color.Token()
		}
		snap.Blocks = string(buf)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frames)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Steps)           //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Ticks) // float bits are stable
	h = h*31 + uint64(snap.White)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Black)           //#nosec G115 -- hash computation
	for _, f := range snap.BallData {
		h = h*31 + math.Float64bits(f)
	}
	for i := 0; i < len(snap.Blocks); i++ {
		h = h*31 + uint64(snap.Blocks[i])
	}
	for i := 0; i < len(snap.Mode); i++ {
		h = h*31 + uint64(snap.Mode[i])
	}
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.GameOver {
		h = h*31 + 2
	}
	return h
}
