package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	var cfg PaintWarConfig
	if err := yaml.Unmarshal(defaultPaintWarYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if want := DefaultPaintWarConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded yaml = %+v\nwant %+v", cfg, want)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultPaintWarConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, ok := cfg.Mode(ModeGrid); !ok {
		t.Error("grid mode missing from embedded default")
	}
	if cfg.Arena.Width != 300 {
		t.Errorf("arena width = %g, want 300", cfg.Arena.Width)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".paintwar", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "paintwar.yaml"), []byte("balls:\n  radius: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Balls.Radius != 4 {
		t.Errorf("radius = %g, want 4", cfg.Balls.Radius)
	}
	// Untouched sections keep their defaults.
	if cfg.Arena.Height != 300 {
		t.Errorf("arena height = %g, want 300", cfg.Arena.Height)
	}
}

func TestLoadInvalidUserConfigIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".paintwar", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "paintwar.yaml"), []byte("balls:\n  radius: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Balls.Radius != 7.5 {
		t.Errorf("radius = %g, want embedded default 7.5", cfg.Balls.Radius)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
modes:
  paintwar_grid:
    title: Tiny
    grid:
      enabled: true
      rows: 2
      cols: 3
      cell_size: 10
      layout: ["bwb", "wbw"]
    substeps:
      policy: fixed
      count: 8
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	m, ok := cfg.Mode(ModeGrid)
	if !ok {
		t.Fatal("grid mode missing")
	}
	if m.Title != "Tiny" || m.SubSteps.Count != 8 {
		t.Errorf("mode = %+v", m)
	}
	if got := m.Grid.ResolvedLayout(); !reflect.DeepEqual(got, []string{"bwb", "wbw"}) {
		t.Errorf("layout = %v", got)
	}
	// The classic mode is not named in the file and survives.
	if _, ok := cfg.Mode(ModeClassic); !ok {
		t.Error("classic mode lost")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	mismatch := filepath.Join(dir, "mismatch.yaml")
	data := `
modes:
  paintwar_grid:
    grid: {enabled: true, rows: 2, cols: 2, cell_size: 10, layout: ["bw"]}
    substeps: {policy: fixed, count: 1}
`
	if err := os.WriteFile(mismatch, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(mismatch)
	if !errors.Is(err, ErrLayoutMismatch) {
		t.Errorf("Load() error = %v, want ErrLayoutMismatch", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PaintWarConfig)
		want   error
	}{
		{"ok", func(*PaintWarConfig) {}, nil},
		{"zero width", func(c *PaintWarConfig) { c.Arena.Width = 0 }, ErrInvalidConfig},
		{"zero wall", func(c *PaintWarConfig) { c.Arena.WallThickness = 0 }, ErrInvalidConfig},
		{"zero radius", func(c *PaintWarConfig) { c.Balls.Radius = 0 }, ErrInvalidConfig},
		{"huge radius", func(c *PaintWarConfig) { c.Balls.Radius = 200 }, ErrInvalidConfig},
		{"zero tick rate", func(c *PaintWarConfig) { c.Physics.TickRate = 0 }, ErrInvalidConfig},
		{"inverted range", func(c *PaintWarConfig) { c.Balls.White.Velocity.X = Range{Min: 3, Max: 1} }, ErrInvalidConfig},
		{"inverted range with fixed", func(c *PaintWarConfig) {
			c.Balls.White.Velocity.X = Range{Min: 3, Max: 1}
			c.Balls.White.Velocity.Fixed = &Vec{X: 1}
		}, nil},
		{"bad spawn", func(c *PaintWarConfig) { c.Balls.Black.Spawn = "left" }, ErrInvalidConfig},
		{"no modes", func(c *PaintWarConfig) { c.Modes = nil }, ErrInvalidConfig},
		{"zero fixed count", func(c *PaintWarConfig) {
			m := c.Modes[ModeGrid]
			m.SubSteps.Count = 0
			c.Modes[ModeGrid] = m
		}, ErrInvalidConfig},
		{"unordered tiers", func(c *PaintWarConfig) {
			m := c.Modes[ModeClassic]
			m.SubSteps.Tiers = []TierConfig{{MaxSpeed: 10, Steps: 2}, {MaxSpeed: 5, Steps: 1}}
			c.Modes[ModeClassic] = m
		}, ErrInvalidConfig},
		{"unknown policy", func(c *PaintWarConfig) {
			m := c.Modes[ModeClassic]
			m.SubSteps.Policy = "sometimes"
			c.Modes[ModeClassic] = m
		}, ErrInvalidConfig},
		{"unknown pattern", func(c *PaintWarConfig) {
			m := c.Modes[ModeGrid]
			m.Grid.Pattern = "stripes"
			c.Modes[ModeGrid] = m
		}, ErrInvalidConfig},
		{"short layout", func(c *PaintWarConfig) {
			m := c.Modes[ModeGrid]
			m.Grid.Layout = []string{strings.Repeat("b", 20)}
			c.Modes[ModeGrid] = m
		}, ErrLayoutMismatch},
		{"bad spawn override", func(c *PaintWarConfig) {
			m := c.Modes[ModeGrid]
			m.Spawn = map[string]string{"red": SpawnTop}
			c.Modes[ModeGrid] = m
		}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPaintWarConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		rows   int
		cols   int
		want   error
	}{
		{"ok", []string{"bw", "wb"}, 2, 2, nil},
		{"too few rows", []string{"bw"}, 2, 2, ErrLayoutMismatch},
		{"too many rows", []string{"bw", "wb", "bb"}, 2, 2, ErrLayoutMismatch},
		{"short row", []string{"bw", "w"}, 2, 2, ErrLayoutMismatch},
		{"long row", []string{"bwb", "wbw"}, 2, 2, ErrLayoutMismatch},
		{"bad token", []string{"bx", "wb"}, 2, 2, ErrInvalidConfig},
		{"empty", nil, 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLayout(tt.layout, tt.rows, tt.cols)
			if tt.want == nil && err != nil {
				t.Fatalf("CheckLayout() = %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("CheckLayout() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateLayout(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{PatternSplit, []string{"bbb", "bbb", "www", "www"}},
		{PatternColumns, []string{"bww", "bww", "bww", "bww"}},
		{PatternChecker, []string{"bwb", "wbw", "bwb", "wbw"}},
		{"unknown", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := GenerateLayout(tt.pattern, 4, 3)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateLayout(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSpawnFor(t *testing.T) {
	m := ModeConfig{Spawn: map[string]string{"white": SpawnLower}}
	if got := m.SpawnFor("white", SpawnBottom); got != SpawnLower {
		t.Errorf("white spawn = %s, want %s", got, SpawnLower)
	}
	if got := m.SpawnFor("black", SpawnTop); got != SpawnTop {
		t.Errorf("black spawn = %s, want %s", got, SpawnTop)
	}
}
