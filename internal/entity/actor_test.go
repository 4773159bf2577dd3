package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samdwyer/snakestage/internal/world"
)

func pos(r, c int) world.Position { return world.Position{Row: r, Col: c} }

func TestNewActorTrailsBehindHead(t *testing.T) {
	a := NewActor(pos(10, 10), world.DirRight, 3)

	want := []world.Position{pos(10, 10), pos(10, 9), pos(10, 8)}
	if diff := cmp.Diff(want, a.Body()); diff != "" {
		t.Errorf("Body() mismatch (-want +got):\n%s", diff)
	}
	if a.Direction() != world.DirRight {
		t.Errorf("Direction() = %v, want right", a.Direction())
	}
	if !a.IsAlive() {
		t.Error("IsAlive() = false for a length-3 actor")
	}
}

func TestProposeHeadDoesNotMutate(t *testing.T) {
	a := NewActor(pos(5, 5), world.DirUp, 3)
	before := a.Body()

	if got := a.ProposeHead(world.DirLeft); got != pos(5, 4) {
		t.Errorf("ProposeHead(left) = %v, want (5,4)", got)
	}
	if diff := cmp.Diff(before, a.Body()); diff != "" {
		t.Errorf("ProposeHead mutated body (-before +after):\n%s", diff)
	}
}

func TestCommitEffects(t *testing.T) {
	tests := []struct {
		name   string
		length int
		effect Effect
		want   []world.Position
	}{
		{
			name:   "normal keeps length",
			length: 3,
			effect: Normal(),
			want:   []world.Position{pos(5, 6), pos(5, 5), pos(5, 4)},
		},
		{
			name:   "grow adds one",
			length: 3,
			effect: Grow(),
			want:   []world.Position{pos(5, 6), pos(5, 5), pos(5, 4), pos(5, 3)},
		},
		{
			name:   "shrink two from five",
			length: 5,
			effect: Shrink(2),
			want:   []world.Position{pos(5, 6), pos(5, 5), pos(5, 4), pos(5, 3)},
		},
		{
			name:   "shrink never removes the head",
			length: 3,
			effect: Shrink(10),
			want:   []world.Position{pos(5, 6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(pos(5, 5), world.DirRight, tt.length)
			a.Commit(pos(5, 6), tt.effect)
			if diff := cmp.Diff(tt.want, a.Body()); diff != "" {
				t.Errorf("Body() after Commit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommitShrinkBelowMinLength(t *testing.T) {
	a := NewActor(pos(5, 5), world.DirRight, 3)
	a.Commit(pos(5, 6), Shrink(2))

	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
	if a.IsAlive() {
		t.Error("IsAlive() = true below MinLength")
	}
}

func TestOccupiesTailPolicy(t *testing.T) {
	a := NewActor(pos(5, 5), world.DirRight, 4)
	tail := a.Tail()

	if !a.Occupies(tail, false) {
		t.Error("Occupies(tail, false) = false, want true")
	}
	if a.Occupies(tail, true) {
		t.Error("Occupies(tail, true) = true, want false")
	}
	if !a.Occupies(a.Head(), true) {
		t.Error("Occupies(head, true) = false, want true")
	}
	if a.Occupies(pos(0, 0), false) {
		t.Error("Occupies(off-body) = true, want false")
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name    string
		request world.Direction
		wantErr error
		wantDir world.Direction
	}{
		{"same direction is a no-op", world.DirRight, nil, world.DirRight},
		{"perpendicular replaces", world.DirUp, nil, world.DirUp},
		{"perpendicular down", world.DirDown, nil, world.DirDown},
		{"opposite is rejected", world.DirLeft, ErrOppositeDirection, world.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(pos(5, 5), world.DirRight, 3)
			if err := a.SetDirection(tt.request); err != tt.wantErr {
				t.Errorf("SetDirection(%v) error = %v, want %v", tt.request, err, tt.wantErr)
			}
			if a.Direction() != tt.wantDir {
				t.Errorf("Direction() = %v, want %v", a.Direction(), tt.wantDir)
			}
		})
	}
}

func TestBodyReturnsCopy(t *testing.T) {
	a := NewActor(pos(5, 5), world.DirRight, 3)
	b := a.Body()
	b[0] = pos(0, 0)
	if a.Head() != pos(5, 5) {
		t.Error("mutating Body() result changed the actor")
	}
}
