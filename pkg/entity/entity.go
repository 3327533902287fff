// pkg/entity/entity.go
package entity

import (
	"time"

	"github.com/opd-ai/go-merlin/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	Update(delta time.Duration)
	Render(r Renderer)
}

// BaseEntity contains the fields shared by every object placed in the world
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Rotation float64 // radians, clockwise from up
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Render draws the player through r.
func (p *Player) Render(r Renderer) {
	r.RenderPlayer(p)
}
