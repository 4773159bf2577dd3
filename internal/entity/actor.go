// Package entity provides the articulated actor moving across the stage.
package entity

import (
	"errors"

	"github.com/samdwyer/snakestage/internal/world"
)

// MinLength is the shortest body an actor can have and stay alive.
const MinLength = 3

// ErrOppositeDirection is returned when asked to reverse onto the body.
var ErrOppositeDirection = errors.New("cannot reverse into the opposite direction")

// EffectKind selects how the tail reacts when the head advances.
type EffectKind int

const (
	// EffectNormal moves the whole body one cell.
	EffectNormal EffectKind = iota
	// EffectGrow keeps the tail in place, lengthening the body by one.
	EffectGrow
	// EffectShrink drops extra tail segments after the move.
	EffectShrink
)

// Effect describes the body change applied by Commit.
type Effect struct {
	Kind EffectKind
	N    int // Segments removed for EffectShrink
}

// Normal returns the plain movement effect.
func Normal() Effect { return Effect{Kind: EffectNormal} }

// Grow returns the lengthen-by-one effect.
func Grow() Effect { return Effect{Kind: EffectGrow} }

// Shrink returns an effect removing up to n tail segments.
func Shrink(n int) Effect { return Effect{Kind: EffectShrink, N: n} }

// Actor is an ordered body of cells, head first, travelling in one direction.
type Actor struct {
	body      []world.Position
	direction world.Direction
}

// NewActor creates an actor whose head is at head and whose body trails
// behind it, opposite to the travel direction.
func NewActor(head world.Position, dir world.Direction, length int) *Actor {
	if length < 1 {
		length = 1
	}
	body := make([]world.Position, length)
	body[0] = head
	back := dir.Opposite()
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Step(back)
	}
	return &Actor{body: body, direction: dir}
}

// Head returns the position of the first segment.
func (a *Actor) Head() world.Position {
	return a.body[0]
}

// Tail returns the position of the last segment.
func (a *Actor) Tail() world.Position {
	return a.body[len(a.body)-1]
}

// Len returns the number of body segments.
func (a *Actor) Len() int {
	return len(a.body)
}

// IsAlive returns true while the body is at least MinLength long.
func (a *Actor) IsAlive() bool {
	return len(a.body) >= MinLength
}

// Body returns a copy of the body, head first.
func (a *Actor) Body() []world.Position {
	out := make([]world.Position, len(a.body))
	copy(out, a.body)
	return out
}

// Direction returns the current travel direction.
func (a *Actor) Direction() world.Direction {
	return a.direction
}

// SetDirection changes the travel direction. Requesting the current direction
// is a no-op; requesting its opposite fails with ErrOppositeDirection.
func (a *Actor) SetDirection(d world.Direction) error {
	if d == a.direction.Opposite() {
		return ErrOppositeDirection
	}
	a.direction = d
	return nil
}

// Redirect forces the travel direction, as when leaving a gate.
func (a *Actor) Redirect(d world.Direction) {
	a.direction = d
}

// ProposeHead returns where the head would land moving one cell in dir.
func (a *Actor) ProposeHead(dir world.Direction) world.Position {
	return a.Head().Step(dir)
}

// Occupies reports whether p is part of the body. With excludeTail set, the
// last segment is ignored because it is about to be vacated by this move.
func (a *Actor) Occupies(p world.Position, excludeTail bool) bool {
	segments := a.body
	if excludeTail && len(segments) > 0 {
		segments = segments[:len(segments)-1]
	}
	for _, s := range segments {
		if s == p {
			return true
		}
	}
	return false
}

// Commit advances the head to newHead and applies the effect to the tail.
// Shrinking never removes the head; callers check IsAlive afterwards.
func (a *Actor) Commit(newHead world.Position, effect Effect) {
	a.body = append(a.body, world.Position{})
	copy(a.body[1:], a.body[:len(a.body)-1])
	a.body[0] = newHead

	var drop int
	switch effect.Kind {
	case EffectNormal:
		drop = 1
	case EffectShrink:
		drop = effect.N
	}
	if limit := len(a.body) - 1; drop > limit {
		drop = limit
	}
	a.body = a.body[:len(a.body)-drop]
}
