package physics

import (
	"github.com/jakecoffman/cp"
)

// CollisionEvent is a pair of bodies whose shapes just started touching.
// Events are delivered synchronously from inside World.Step and are never stored.
type CollisionEvent struct {
	A, B *Body
}

// CollisionObserver receives begin-contact events.
type CollisionObserver interface {
	OnCollision(evt CollisionEvent)
}

// CollisionObserverFunc adapts a plain function to CollisionObserver.
type CollisionObserverFunc func(evt CollisionEvent)

// OnCollision calls f(evt).
func (f CollisionObserverFunc) OnCollision(evt CollisionEvent) {
	f(evt)
}

// WorldOptions tunes the underlying cp space.
type WorldOptions struct {
	// Iterations is the solver iteration count per step. Zero keeps cp's default.
	Iterations int
}

// World owns the cp space and every body in one game session.
// It is not safe for concurrent use; one goroutine steps and reads it.
type World struct {
	space     *cp.Space
	bodies    []*Body
	observers []CollisionObserver

	steps   int
	elapsed float64
}

// NewWorld creates an empty world with zero gravity, no damping and no sleeping.
func NewWorld(opts WorldOptions) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.SetDamping(1)
	if opts.Iterations > 0 {
		space.Iterations = uint(opts.Iterations)
	}

	w := &World{space: space}

	// Every contact involving a ball passes through begin, which reports it
	// and always lets cp resolve the bounce.
	handler := space.NewWildcardCollisionHandler(KindBall.collisionType())
	handler.BeginFunc = w.begin

	return w
}

// begin is the cp begin callback. Shape a is always the ball.
func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	sa, sb := arb.Shapes()
	a, okA := sa.UserData.(*Body)
	b, okB := sb.UserData.(*Body)
	if !okA || !okB {
		return true
	}

	evt := CollisionEvent{A: a, B: b}
	for _, o := range w.observers {
		o.OnCollision(evt)
	}
	return true
}

// OnCollisionBegin registers an observer for begin-contact events.
func (w *World) OnCollisionBegin(o CollisionObserver) {
	w.observers = append(w.observers, o)
}

// Add inserts bodies into the simulation, in order.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		w.space.AddBody(b.body)
		w.space.AddShape(b.shape)
		w.bodies = append(w.bodies, b)
	}
}

// Bodies returns all bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Dynamic returns the bodies the engine moves.
func (w *World) Dynamic() []*Body {
	var out []*Body
	for _, b := range w.bodies {
		if !b.IsStatic() {
			out = append(out, b)
		}
	}
	return out
}

// MaxSpeed returns the highest speed among dynamic bodies, or 0 if none.
func (w *World) MaxSpeed() float64 {
	var fastest float64
	for _, b := range w.bodies {
		if b.IsStatic() {
			continue
		}
		if s := b.Speed(); s > fastest {
			fastest = s
		}
	}
	return fastest
}

// Step advances the simulation by dt ticks. Collision observers run before
// Step returns. Dynamic bodies leave every step at their cruising speed.
func (w *World) Step(dt float64) {
	if w.space == nil {
		return
	}
	w.space.Step(dt)
	for _, b := range w.bodies {
		b.holdCruise()
	}
	w.steps++
	w.elapsed += dt
}

// Steps returns how many engine steps have run.
func (w *World) Steps() int {
	return w.steps
}

// Elapsed returns the total simulated time in ticks.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Close ends the session. Later Step calls are ignored.
func (w *World) Close() {
	w.space = nil
	w.observers = nil
}
