package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Kind identifies what role a body plays in the arena.
type Kind uint8

const (
	KindWall Kind = iota
	KindBall
	KindBlock
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBall:
		return "ball"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// collisionType maps a kind onto a cp collision type. Zero is reserved by cp
// as the default type, so kinds start at one.
func (k Kind) collisionType() cp.CollisionType {
	return cp.CollisionType(k) + 1
}

// Team is one of the two sides of the paint war. It doubles as a render color.
type Team uint8

const (
	TeamWhite Team = iota
	TeamBlack
)

// Opposite returns the other team.
func (t Team) Opposite() Team {
	if t == TeamWhite {
		return TeamBlack
	}
	return TeamWhite
}

// String returns "white" or "black".
func (t Team) String() string {
	if t == TeamBlack {
		return "black"
	}
	return "white"
}

// Token returns the single-character layout token for the team.
func (t Team) Token() byte {
	if t == TeamBlack {
		return 'b'
	}
	return 'w'
}

// ParseTeam accepts the layout tokens 'w'/'b' and the full names.
func ParseTeam(s string) (Team, error) {
	switch s {
	case "w", "white":
		return TeamWhite, nil
	case "b", "black":
		return TeamBlack, nil
	}
	return TeamWhite, fmt.Errorf("physics: unknown team %q", s)
}

// ShapeKind discriminates the shape descriptor.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape describes the geometry used for collision and for drawing.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // circles
	W, H   float64 // rectangles
}

// Circle returns a circle descriptor.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Rect returns a rectangle descriptor.
func Rect(w, h float64) Shape {
	return Shape{Kind: ShapeRect, W: w, H: h}
}

// Size returns the width and height of the shape's bounding box.
func (s Shape) Size() (w, h float64) {
	if s.Kind == ShapeCircle {
		return s.Radius * 2, s.Radius * 2
	}
	return s.W, s.H
}

// Body is a physical actor: one cp body with exactly one shape, plus the
// render state the engine itself does not care about.
type Body struct {
	Label string
	Kind  Kind
	Shape Shape
	Color Team

	restitution float64
	friction    float64
	frictionAir float64

	// cruise is the speed the world holds a dynamic body at, set by
	// SetVelocity. Zero leaves the body alone.
	cruise float64

	category Category
	mask     Category
	body     *cp.Body
	shape    *cp.Shape
}

// newBody attaches geometry to a cp body and links the shape back to b.
func newBody(label string, kind Kind, shape Shape, cb *cp.Body, x, y float64) *Body {
	cb.SetPosition(cp.Vector{X: x, Y: y})

	var cs *cp.Shape
	switch shape.Kind {
	case ShapeCircle:
		cs = cp.NewCircle(cb, shape.Radius, cp.Vector{})
	default:
		cs = cp.NewBox(cb, shape.W, shape.H, 0)
	}

	b := &Body{
		Label: label,
		Kind:  kind,
		Shape: shape,
		body:  cb,
		shape: cs,
	}
	cs.UserData = b
	cb.UserData = b
	cs.SetCollisionType(kind.collisionType())
	return b
}

// setMaterial applies restitution and friction to the collision shape.
func (b *Body) setMaterial(restitution, friction, frictionAir float64) {
	b.restitution = restitution
	b.friction = friction
	b.frictionAir = frictionAir
	b.shape.SetElasticity(restitution)
	b.shape.SetFriction(friction)
}

// Restitution returns the elasticity of the body's shape.
func (b *Body) Restitution() float64 {
	return b.restitution
}

// Friction returns the contact friction of the body's shape.
func (b *Body) Friction() float64 {
	return b.friction
}

// FrictionAir returns the body's air drag.
func (b *Body) FrictionAir() float64 {
	return b.frictionAir
}

// Position returns the center of the body in world units.
func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

// Angle returns the body rotation in radians.
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// Velocity returns the linear velocity in units per tick.
func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

// SetVelocity sets the linear velocity in units per tick. Its magnitude
// becomes the cruising speed World.Step restores after every step.
func (b *Body) SetVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
	b.cruise = v.Length()
}

// Cruise returns the speed the world keeps the body at.
func (b *Body) Cruise() float64 {
	return b.cruise
}

// holdCruise rescales the velocity back to the cruising speed. Several
// simultaneous contacts can each apply a full restitution impulse, which
// would otherwise let a ball gain energy.
func (b *Body) holdCruise() {
	if b.cruise <= 0 || b.IsStatic() {
		return
	}
	v := b.body.Velocity()
	s := v.Length()
	if s == 0 || s == b.cruise {
		return
	}
	b.body.SetVelocityVector(v.Mult(b.cruise / s))
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return b.body.Velocity().Length()
}

// IsStatic reports whether the engine treats the body as immovable.
func (b *Body) IsStatic() bool {
	return b.body.GetType() == cp.BODY_STATIC
}

// Category returns the body's collision category bit.
func (b *Body) Category() Category {
	return b.category
}

// Mask returns the categories this body collides with.
func (b *Body) Mask() Category {
	return b.mask
}

// SetFilter replaces the collision category and mask.
func (b *Body) SetFilter(category, mask Category) {
	b.category, b.mask = category, mask
	b.shape.SetFilter(Filter(category, mask))
}

// CollidesWith reports whether the engine would let the two bodies touch.
// The test is symmetric: each side's mask must admit the other's category.
func (b *Body) CollidesWith(other *Body) bool {
	return b.Mask()&other.Category() != 0 && other.Mask()&b.Category() != 0
}

// String is used in logs and test failures.
func (b *Body) String() string {
	p := b.Position()
	return fmt.Sprintf("%s(%s %s @ %.1f,%.1f)", b.Label, b.Kind, b.Color, p.X, p.Y)
}
