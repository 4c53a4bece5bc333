package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestNewWall(t *testing.T) {
	w := NewWall("leftWall", 0.5, 150, 1, 300)

	if w.Kind != KindWall {
		t.Errorf("Kind = %s, expected wall", w.Kind)
	}
	if !w.IsStatic() {
		t.Error("walls must be static")
	}
	if w.Restitution() != 1 {
		t.Errorf("Restitution = %v, expected 1", w.Restitution())
	}
	if w.Category() != CategoryWall || w.Mask() != WallMask() {
		t.Errorf("filter = %s/%s, expected wall/%s", w.Category(), w.Mask(), WallMask())
	}
	if p := w.Position(); p.X != 0.5 || p.Y != 150 {
		t.Errorf("Position() = %v, expected (0.5, 150)", p)
	}
	if gw, gh := w.Shape.Size(); gw != 1 || gh != 300 {
		t.Errorf("Size() = %vx%v, expected 1x300", gw, gh)
	}
}

func TestNewBall(t *testing.T) {
	tests := []struct {
		team     Team
		category Category
		color    Team
		label    string
	}{
		{TeamWhite, CategoryWhiteBall, TeamBlack, "whiteBall"},
		{TeamBlack, CategoryBlackBall, TeamWhite, "blackBall"},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			b := NewBall(tc.team, 150, 291.5, 7.5)

			if b.IsStatic() {
				t.Error("balls must be dynamic")
			}
			if b.Label != tc.label {
				t.Errorf("Label = %q, expected %q", b.Label, tc.label)
			}
			if b.Category() != tc.category {
				t.Errorf("Category = %s, expected %s", b.Category(), tc.category)
			}
			if b.Mask() != BallMask(tc.team) {
				t.Errorf("Mask = %s, expected %s", b.Mask(), BallMask(tc.team))
			}
			if b.Color != tc.color {
				t.Errorf("Color = %s, expected %s", b.Color, tc.color)
			}
			if BallTeam(b) != tc.team {
				t.Errorf("BallTeam = %s, expected %s", BallTeam(b), tc.team)
			}
			if b.Restitution() != 1 || b.Friction() != 0 || b.FrictionAir() != 0 {
				t.Errorf("material = %v/%v/%v, expected 1/0/0", b.Restitution(), b.Friction(), b.FrictionAir())
			}
			if b.body.Moment() != cp.INFINITY {
				t.Errorf("Moment = %v, expected infinite", b.body.Moment())
			}
			if b.Shape.Kind != ShapeCircle || b.Shape.Radius != 7.5 {
				t.Errorf("Shape = %+v, expected circle r=7.5", b.Shape)
			}
		})
	}
}

func TestNewBlockAndPaint(t *testing.T) {
	b := NewBlock(TeamBlack, 7.5, 7.5, 15)

	if !b.IsStatic() || b.Kind != KindBlock {
		t.Fatalf("block should be static kind=block, got %s", b)
	}
	if b.Color != TeamBlack || b.Category() != CategoryBlackBlock || b.Mask() != CategoryWhiteBall {
		t.Errorf("black block filter wrong: color=%s cat=%s mask=%s", b.Color, b.Category(), b.Mask())
	}

	Paint(b, TeamWhite)
	if b.Color != TeamWhite || b.Category() != CategoryWhiteBlock || b.Mask() != CategoryBlackBall {
		t.Errorf("painted block filter wrong: color=%s cat=%s mask=%s", b.Color, b.Category(), b.Mask())
	}
}

func TestCollidesWith(t *testing.T) {
	white := NewBall(TeamWhite, 0, 0, 1)
	black := NewBall(TeamBlack, 0, 0, 1)
	wall := NewWall("wall", 0, 0, 1, 1)
	whiteBlock := NewBlock(TeamWhite, 0, 0, 1)
	blackBlock := NewBlock(TeamBlack, 0, 0, 1)

	tests := []struct {
		name     string
		a, b     *Body
		expected bool
	}{
		{"white ball vs wall", white, wall, true},
		{"black ball vs wall", black, wall, true},
		{"white ball vs black block", white, blackBlock, true},
		{"white ball vs white block", white, whiteBlock, false},
		{"black ball vs white block", black, whiteBlock, true},
		{"black ball vs black block", black, blackBlock, false},
		{"ball vs ball", white, black, false},
		{"wall vs block", wall, blackBlock, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.CollidesWith(tc.b); got != tc.expected {
				t.Errorf("CollidesWith = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.CollidesWith(tc.a); got != tc.expected {
				t.Errorf("CollidesWith (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestParseTeam(t *testing.T) {
	for _, s := range []string{"w", "white"} {
		if team, err := ParseTeam(s); err != nil || team != TeamWhite {
			t.Errorf("ParseTeam(%q) = %s, %v", s, team, err)
		}
	}
	for _, s := range []string{"b", "black"} {
		if team, err := ParseTeam(s); err != nil || team != TeamBlack {
			t.Errorf("ParseTeam(%q) = %s, %v", s, team, err)
		}
	}
	if _, err := ParseTeam("x"); err == nil {
		t.Error("ParseTeam(\"x\") should fail")
	}
	if TeamWhite.Opposite() != TeamBlack || TeamBlack.Opposite() != TeamWhite {
		t.Error("Opposite should swap teams")
	}
}
