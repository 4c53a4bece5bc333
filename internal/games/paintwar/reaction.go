package paintwar

import "github.com/vovakirdan/tui-paintwar/internal/physics"

// Painter recolors blocks that a ball touches.
type Painter struct {
	// OnPaint, if set, is called after a block changes team.
	OnPaint func(block *physics.Body, from, to physics.Team)
}

// React handles one contact, in either argument order. For a ball/block pair
// the block takes the ball's team (the opposite of the ball's render color)
// and moves into that team's collision category. It reports whether the
// block changed; any other pair is left untouched.
func (p *Painter) React(a, b *physics.Body) bool {
	ball, block := a, b
	if ball.Kind != physics.KindBall {
		ball, block = b, a
	}
	if ball.Kind != physics.KindBall || block.Kind != physics.KindBlock {
		return false
	}

	from := block.Color
	to := ball.Color.Opposite()
	if from == to {
		return false
	}

	physics.Paint(block, to)
	if p.OnPaint != nil {
		p.OnPaint(block, from, to)
	}
	return true
}

// OnCollision lets a Painter observe a World. The contact itself always
// proceeds, so the ball bounces off the block it just painted.
func (p *Painter) OnCollision(evt physics.CollisionEvent) {
	p.React(evt.A, evt.B)
}
