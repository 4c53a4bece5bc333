package paintwar

import (
	"fmt"

	"github.com/vovakirdan/tui-paintwar/internal/physics"
)

// Entity ids, in the order they are created and drawn.
const (
	IDLeftWall  = "leftWall"
	IDRightWall = "rightWall"
	IDCeiling   = "ceiling"
	IDFloor     = "floor"
	IDWhiteBall = "whiteBall"
	IDBlackBall = "blackBall"
	IDGrid      = "grid"
)

// Entity is one named thing in the arena: a WallEntity, a BallEntity or a
// GridEntity.
type Entity interface {
	EntityID() string
	Bodies() []*physics.Body
}

// WallEntity is one static boundary.
type WallEntity struct {
	ID   string
	Body *physics.Body
}

// EntityID returns the wall's id.
func (e WallEntity) EntityID() string { return e.ID }

// Bodies returns the wall body.
func (e WallEntity) Bodies() []*physics.Body { return []*physics.Body{e.Body} }

// BallEntity is one team's ball.
type BallEntity struct {
	ID   string
	Team physics.Team
	Body *physics.Body
}

// EntityID returns the ball's id.
func (e BallEntity) EntityID() string { return e.ID }

// Bodies returns the ball body.
func (e BallEntity) Bodies() []*physics.Body { return []*physics.Body{e.Body} }

// GridEntity holds every block in row-major order.
type GridEntity struct {
	ID       string
	Rows     int
	Cols     int
	CellSize float64
	Blocks   []*physics.Body
}

// EntityID returns the grid's id.
func (e GridEntity) EntityID() string { return e.ID }

// Bodies returns the blocks in row-major order.
func (e GridEntity) Bodies() []*physics.Body { return e.Blocks }

// Block returns the block at (r, c), or nil if out of range.
func (e GridEntity) Block(r, c int) *physics.Body {
	if r < 0 || r >= e.Rows || c < 0 || c >= e.Cols {
		return nil
	}
	return e.Blocks[r*e.Cols+c]
}

// Entities is an insertion-ordered collection keyed by id.
type Entities struct {
	order []string
	byID  map[string]Entity
}

// NewEntities creates an empty collection.
func NewEntities() *Entities {
	return &Entities{byID: make(map[string]Entity)}
}

// Add appends an entity. Ids must be unique.
func (es *Entities) Add(e Entity) error {
	id := e.EntityID()
	if _, exists := es.byID[id]; exists {
		return fmt.Errorf("paintwar: duplicate entity %q", id)
	}
	es.order = append(es.order, id)
	es.byID[id] = e
	return nil
}

// Get returns the entity with the given id.
func (es *Entities) Get(id string) (Entity, bool) {
	e, ok := es.byID[id]
	return e, ok
}

// All returns the entities in insertion order.
func (es *Entities) All() []Entity {
	out := make([]Entity, 0, len(es.order))
	for _, id := range es.order {
		out = append(out, es.byID[id])
	}
	return out
}

// Len returns the number of entities.
func (es *Entities) Len() int {
	return len(es.order)
}

// Ball returns a team's ball body, or nil.
func (es *Entities) Ball(team physics.Team) *physics.Body {
	id := IDWhiteBall
	if team == physics.TeamBlack {
		id = IDBlackBall
	}
	if e, ok := es.byID[id].(BallEntity); ok {
		return e.Body
	}
	return nil
}

// Grid returns the grid entity, if the arena has one.
func (es *Entities) Grid() (GridEntity, bool) {
	g, ok := es.byID[IDGrid].(GridEntity)
	return g, ok
}
