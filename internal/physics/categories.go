// Package physics wraps the Chipmunk2D port (github.com/jakecoffman/cp) with the
// small data model the paint war needs: walls, balls and blocks that carry a
// team color and a collision filter.
//
// Simulation time is measured in base ticks, not seconds. A velocity of 8 means
// 8 world units per tick.
package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Category is a single collision category bit. Masks are OR-ed categories.
type Category uint

// Collision categories. Each actor kind owns exactly one bit.
const (
	CategoryWall       Category = 1 << iota // 1
	CategoryWhiteBall                       // 2
	CategoryBlackBall                       // 4
	CategoryWhiteBlock                      // 8
	CategoryBlackBlock                      // 16
)

// Categories returns every registered category in bit order.
func Categories() []Category {
	return []Category{
		CategoryWall,
		CategoryWhiteBall,
		CategoryBlackBall,
		CategoryWhiteBlock,
		CategoryBlackBlock,
	}
}

// String returns the actor name of a single category bit.
func (c Category) String() string {
	switch c {
	case CategoryWall:
		return "wall"
	case CategoryWhiteBall:
		return "whiteBall"
	case CategoryBlackBall:
		return "blackBall"
	case CategoryWhiteBlock:
		return "whiteBlock"
	case CategoryBlackBlock:
		return "blackBlock"
	default:
		return fmt.Sprintf("mask(%#x)", uint(c))
	}
}

// Has reports whether every bit of other is set in c.
func (c Category) Has(other Category) bool {
	return c&other == other
}

// Mask ORs the given categories together.
func Mask(cats ...Category) Category {
	var m Category
	for _, c := range cats {
		m |= c
	}
	return m
}

// BallCategory returns the category of the given team's ball.
func BallCategory(t Team) Category {
	if t == TeamBlack {
		return CategoryBlackBall
	}
	return CategoryWhiteBall
}

// BlockCategory returns the category of a block painted in the given team.
func BlockCategory(t Team) Category {
	if t == TeamBlack {
		return CategoryBlackBlock
	}
	return CategoryWhiteBlock
}

// WallMask lets walls collide with both balls.
func WallMask() Category {
	return Mask(CategoryWhiteBall, CategoryBlackBall)
}

// BallMask lets a ball bounce off walls and the other team's blocks. It passes
// through its own territory.
func BallMask(t Team) Category {
	return Mask(CategoryWall, BlockCategory(t.Opposite()))
}

// BlockMask lets a block of team t collide only with the opposing ball.
func BlockMask(t Team) Category {
	return BallCategory(t.Opposite())
}

// Filter converts a category/mask pair to a cp shape filter with no group.
func Filter(category, mask Category) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      0,
		Categories: uint(category),
		Mask:       uint(mask),
	}
}
