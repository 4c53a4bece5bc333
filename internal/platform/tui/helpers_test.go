package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-paintwar/internal/config"
	"github.com/vovakirdan/tui-paintwar/internal/core"
	"github.com/vovakirdan/tui-paintwar/internal/registry"
	"github.com/vovakirdan/tui-paintwar/internal/storage"
)

const stubMode = "stubwar"

// stubGame records what the platform hands it.
type stubGame struct {
	resets   int
	seeds    []int64
	elapsed  []time.Duration
	paused   []bool
	white    int
	black    int
	frames   int
	gameOver bool
	preset   config.SpeedPreset
	closed   bool
}

func (g *stubGame) ID() string { return stubMode }
func (g *stubGame) Title() string { return "Stub War" }
func (g *stubGame) Render(dst *core.Screen) { dst.Clear() }
func (g *stubGame) Tally() (int, int) { return g.white, g.black }
func (g *stubGame) Frames() int { return g.frames }
func (g *stubGame) Elapsed() float64 { return float64(g.frames) / 60 }
func (g *stubGame) SetPreset(p config.SpeedPreset) { g.preset = p }
func (g *stubGame) Close() { g.closed = true }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
}

func (g *stubGame) Step(f core.Frame) core.StepResult {
	g.elapsed = append(g.elapsed, f.Elapsed)
	g.paused = append(g.paused, f.Input.Has(core.ActionPause))
	g.frames++
	return core.StepResult{State: g.State(), SubSteps: 1}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: max(g.white, g.black), GameOver: g.gameOver}
}

func (g *stubGame) Winner() string {
	switch {
	case g.white > g.black:
		return "white"
	case g.black > g.white:
		return "black"
	default:
		return "draw"
	}
}

// lastStub is the most recent game created through the registry.
var lastStub *stubGame

func init() {
	registry.Register(stubMode, func() registry.Game {
		lastStub = &stubGame{}
		return lastStub
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}
