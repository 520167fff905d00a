package arena

import "github.com/solarlune/resolv"

const spaceCellSize = 32

// tags let resolv filter which bodies an overlap test runs against
var (
	tagPlayer = resolv.NewTag("player")
	tagEnemy  = resolv.NewTag("enemy")
	tagBullet = resolv.NewTag("bullet")
	tagPotion = resolv.NewTag("potion")
)

func tagFor(kind Kind) resolv.Tags {
	switch kind {
	case KindPlayer:
		return tagPlayer
	case KindEnemy:
		return tagEnemy
	case KindBullet:
		return tagBullet
	default:
		return tagPotion
	}
}

// Space is the collision facility: it keeps one rectangular body per entity
// and dispatches overlaps between tagged groups.
type Space struct {
	space  *resolv.Space
	owners map[resolv.IShape]*Entity
}

// NewSpace creates a collision space covering the arena plus one cell of slack
// on the far edges, where enemies spawn.
func NewSpace(width, height float64) *Space {
	return &Space{
		space:  resolv.NewSpace(int(width)+spaceCellSize, int(height)+spaceCellSize, spaceCellSize, spaceCellSize),
		owners: make(map[resolv.IShape]*Entity),
	}
}

// Attach gives the entity a collision body at its current position
func (s *Space) Attach(e *Entity) {
	if e == nil || e.body != nil {
		return
	}
	body := resolv.NewRectangleFromTopLeft(e.X-e.W/2, e.Y-e.H/2, e.W, e.H)
	body.Tags().Set(tagFor(e.Kind))
	s.space.Add(body)
	s.owners[body] = e
	e.body = body
}

// Detach removes the entity's body; detaching twice is a no-op
func (s *Space) Detach(e *Entity) {
	if e == nil || e.body == nil {
		return
	}
	s.space.Remove(e.body)
	delete(s.owners, e.body)
	e.body = nil
}

// Sync moves the entity's body to the entity's position
func (s *Space) Sync(e *Entity) {
	if e == nil || e.body == nil {
		return
	}
	e.body.SetPosition(e.X, e.Y)
}

// Len returns the number of bodies in the space
func (s *Space) Len() int {
	return len(s.owners)
}

// Overlapping returns the active entities of the given kind whose bodies
// overlap e, in the order resolv reports them. Cells give the candidates and
// bounding boxes decide, so a body lying fully inside another still counts.
func (s *Space) Overlapping(e *Entity, kind Kind) []*Entity {
	if e == nil || e.body == nil || !e.Active {
		return nil
	}
	var hits []*Entity
	seen := make(map[EntityID]bool)
	bounds := e.body.Bounds()
	e.body.SelectTouchingCells(0).FilterShapes().ByTags(tagFor(kind)).ForEach(func(shape resolv.IShape) bool {
		other := s.owners[shape]
		if other == nil || other == e || !other.Active || seen[other.ID] {
			return true
		}
		if !bounds.IsIntersecting(shape.Bounds()) {
			return true
		}
		seen[other.ID] = true
		hits = append(hits, other)
		return true
	})
	return hits
}

// EachOverlap calls fn for every entity of the given kind overlapping e.
// Bodies are collected before fn runs, so fn may destroy entities; entities
// destroyed along the way are skipped and iteration stops when fn returns
// false or e itself is destroyed.
func (s *Space) EachOverlap(e *Entity, kind Kind, fn func(other *Entity) bool) {
	for _, other := range s.Overlapping(e, kind) {
		if !e.Active {
			return
		}
		if !other.Active {
			continue
		}
		if !fn(other) {
			return
		}
	}
}
