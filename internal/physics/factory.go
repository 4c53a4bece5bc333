package physics

import "github.com/jakecoffman/cp"

// Walls and blocks never lose energy on contact.
const perfectlyElastic = 1.0

// NewWall creates a static rectangular boundary centered on (x, y).
// Walls are painted black and bounce both balls.
func NewWall(label string, x, y, w, h float64) *Body {
	b := newBody(label, KindWall, Rect(w, h), cp.NewStaticBody(), x, y)
	b.Color = TeamBlack
	b.setMaterial(perfectlyElastic, 0, 0)
	b.SetFilter(CategoryWall, WallMask())
	return b
}

// NewBall creates a dynamic ball for the given team. Balls have infinite
// moment of inertia so contacts never make them spin, and no friction or
// drag so their speed is conserved between collisions.
//
// The ball's render color is the opposite of its team, so it stays visible
// while crossing its own territory.
func NewBall(team Team, x, y, radius float64) *Body {
	b := newBody(team.String()+"Ball", KindBall, Circle(radius), cp.NewBody(1, cp.INFINITY), x, y)
	b.Color = team.Opposite()
	b.setMaterial(perfectlyElastic, 0, 0)
	b.SetFilter(BallCategory(team), BallMask(team))
	return b
}

// NewBlock creates a static square grid cell of the given team centered on (x, y).
func NewBlock(team Team, x, y, size float64) *Body {
	b := newBody("block", KindBlock, Rect(size, size), cp.NewStaticBody(), x, y)
	b.setMaterial(perfectlyElastic, 0, 0)
	Paint(b, team)
	return b
}

// Paint recolors a block and moves it into the team's collision category.
// After painting, only the opposing ball can hit it.
func Paint(block *Body, team Team) {
	block.Color = team
	block.SetFilter(BlockCategory(team), BlockMask(team))
}

// BallTeam derives a ball's team from its collision category. The render
// color cannot be used for this because balls are drawn in the opposite color.
func BallTeam(ball *Body) Team {
	if ball.Category() == CategoryBlackBall {
		return TeamBlack
	}
	return TeamWhite
}
