package arena

import (
	"math"

	"github.com/solarlune/resolv"
)

// EntityID is a unique identifier for an entity within one session.
type EntityID uint64

// InvalidEntityID represents an unset entity reference.
const InvalidEntityID EntityID = 0

// Kind identifies the variant of an entity
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindPotion
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindPotion:
		return "potion"
	default:
		return "unknown"
	}
}

// Entity is the uniform record for everything that lives in the arena
type Entity struct {
	ID   EntityID
	Kind Kind

	// Position of the center in world coordinates
	X, Y float64

	// Velocity in units per second
	VX, VY float64

	// Collision box size
	W, H float64

	// Render scale, presentation only
	Scale float64

	// DepthScaled entities get their Scale from their vertical position every frame
	DepthScaled bool

	// Active is false once the entity has been destroyed
	Active bool

	// Enemy type; nil falls back to default speed and 1 hit-point
	Type *EnemyType

	// Remaining hit-points (enemies)
	HP int

	// Heal amount (potions)
	Heal int

	// collision body, owned by the Space
	body resolv.IShape
}

// newEntity creates an active entity of the given kind and size
func newEntity(id EntityID, kind Kind, x, y, w, h float64) *Entity {
	return &Entity{
		ID:     id,
		Kind:   kind,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Scale:  1,
		Active: true,
	}
}

// Speed returns the enemy move speed, falling back to fallback when the type is missing
func (e *Entity) Speed(fallback float64) float64 {
	if e.Type != nil && e.Type.Speed > 0 {
		return e.Type.Speed
	}
	return fallback
}

// SetVelocity sets the entity velocity
func (e *Entity) SetVelocity(vx, vy float64) {
	e.VX = vx
	e.VY = vy
}

// MoveToward sets the velocity to point at (tx, ty) with the given speed.
// The velocity is zeroed when the entity is already at the target.
func (e *Entity) MoveToward(tx, ty, speed float64) {
	dx := tx - e.X
	dy := ty - e.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		e.SetVelocity(0, 0)
		return
	}
	e.SetVelocity(dx/dist*speed, dy/dist*speed)
}

// OutOfBounds reports whether the entity center lies outside [0,w]x[0,h]
func (e *Entity) OutOfBounds(w, h float64) bool {
	return e.X < 0 || e.X > w || e.Y < 0 || e.Y > h
}
