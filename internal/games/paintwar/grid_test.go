package paintwar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-paintwar/internal/config"
	"github.com/vovakirdan/tui-paintwar/internal/physics"
)

func TestParseLayoutRoundTrip(t *testing.T) {
	rows := []string{"bwb", "wbw"}
	layout, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	if layout.Rows() != 2 || layout.Cols(0) != 3 {
		t.Errorf("layout is %dx%d", layout.Rows(), layout.Cols(0))
	}
	if layout.At(0, 0) != physics.TeamBlack || layout.At(1, 0) != physics.TeamWhite {
		t.Error("layout teams misread")
	}
	if got := layout.Strings(); !reflect.DeepEqual(got, rows) {
		t.Errorf("Strings() = %v, want %v", got, rows)
	}
}

func TestParseLayoutRejectsUnknownToken(t *testing.T) {
	if _, err := ParseLayout([]string{"bw", "wx"}); err == nil {
		t.Error("expected error for token 'x'")
	}
}

func TestBuildGrid(t *testing.T) {
	layout, err := ParseLayout([]string{"bww", "wwb"})
	if err != nil {
		t.Fatal(err)
	}

	blocks, err := BuildGrid(2, 3, 10, layout)
	if err != nil {
		t.Fatalf("BuildGrid() failed: %v", err)
	}
	if len(blocks) != 6 {
		t.Fatalf("got %d blocks, want 6", len(blocks))
	}

	tests := []struct {
		idx  int
		x, y float64
		team physics.Team
	}{
		{0, 5, 5, physics.TeamBlack},
		{1, 15, 5, physics.TeamWhite},
		{2, 25, 5, physics.TeamWhite},
		{3, 5, 15, physics.TeamWhite},
		{5, 25, 15, physics.TeamBlack},
	}
	for _, tt := range tests {
		b := blocks[tt.idx]
		p := b.Position()
		if p.X != tt.x || p.Y != tt.y {
			t.Errorf("block %d at (%v,%v), want (%v,%v)", tt.idx, p.X, p.Y, tt.x, tt.y)
		}
		if b.Color != tt.team {
			t.Errorf("block %d color = %s, want %s", tt.idx, b.Color, tt.team)
		}
		if b.Category() != physics.BlockCategory(tt.team) || b.Mask() != physics.BlockMask(tt.team) {
			t.Errorf("block %d filter = %s/%s", tt.idx, b.Category(), b.Mask())
		}
		if w, h := b.Shape.Size(); w != 10 || h != 10 {
			t.Errorf("block %d size = %vx%v", tt.idx, w, h)
		}
		if !b.IsStatic() || b.Kind != physics.KindBlock {
			t.Errorf("block %d is not a static block", tt.idx)
		}
	}
}

func TestBuildGridLayoutMismatch(t *testing.T) {
	tests := []struct {
		name       string
		rows       []string
		nRows, nCo int
	}{
		{"too few rows", []string{"bw"}, 2, 2},
		{"too many rows", []string{"bw", "wb", "bb"}, 2, 2},
		{"short row", []string{"bw", "b"}, 2, 2},
		{"long row", []string{"bw", "bwb"}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := ParseLayout(tt.rows)
			if err != nil {
				t.Fatal(err)
			}
			blocks, err := BuildGrid(tt.nRows, tt.nCo, 10, layout)
			if !errors.Is(err, ErrLayoutMismatch) {
				t.Fatalf("BuildGrid() error = %v, want ErrLayoutMismatch", err)
			}
			if !errors.Is(err, config.ErrLayoutMismatch) {
				t.Error("grid and config sentinels differ")
			}
			if blocks != nil {
				t.Error("BuildGrid() returned blocks on error")
			}
		})
	}
}

func TestBuildGridEmpty(t *testing.T) {
	blocks, err := BuildGrid(0, 0, 10, Layout{})
	if err != nil {
		t.Fatalf("BuildGrid(0,0) failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("got %d blocks", len(blocks))
	}
}

func TestEntitiesOrderAndDuplicates(t *testing.T) {
	es := NewEntities()
	floor := WallEntity{ID: IDFloor, Body: physics.NewWall(IDFloor, 5, 5, 10, 1)}
	ball := BallEntity{ID: IDWhiteBall, Team: physics.TeamWhite, Body: physics.NewBall(physics.TeamWhite, 5, 2, 1)}

	for _, e := range []Entity{floor, ball} {
		if err := es.Add(e); err != nil {
			t.Fatalf("Add(%s) failed: %v", e.EntityID(), err)
		}
	}
	if err := es.Add(floor); err == nil {
		t.Error("expected an error for a duplicate id")
	}

	all := es.All()
	if es.Len() != 2 || all[0].EntityID() != IDFloor || all[1].EntityID() != IDWhiteBall {
		t.Errorf("entities = %v", all)
	}
	if es.Ball(physics.TeamWhite) != ball.Body || es.Ball(physics.TeamBlack) != nil {
		t.Error("Ball() lookup failed")
	}
	if _, ok := es.Grid(); ok {
		t.Error("Grid() found a grid that was never added")
	}
}
