package world

import (
	"errors"
	"math/rand"
	"slices"
)

// ErrNotEnoughWalls is returned when a stage has fewer than two wall cells to host gates.
var ErrNotEnoughWalls = errors.New("stage needs at least two wall cells to place gates")

// GatePair holds the two linked gate cells of a stage. Entering either one
// exits next to the other.
type GatePair struct {
	A, B Position
}

// Other returns the gate paired with the given one.
func (gp GatePair) Other(entered Position) Position {
	if entered == gp.A {
		return gp.B
	}
	return gp.A
}

// Contains returns true if p is one of the two gates.
func (gp GatePair) Contains(p Position) bool {
	return p == gp.A || p == gp.B
}

// PlaceGates picks two distinct wall cells at random, converts them to gate
// tiles and returns the pair. Immune walls are never chosen.
func PlaceGates(g *Grid, rng *rand.Rand) (GatePair, error) {
	walls := slices.Collect(g.PositionsOf(TileWall))
	if len(walls) < 2 {
		return GatePair{}, ErrNotEnoughWalls
	}

	i := rng.Intn(len(walls))
	j := rng.Intn(len(walls) - 1)
	if j >= i {
		j++
	}

	pair := GatePair{A: walls[i], B: walls[j]}
	g.SetTile(pair.A, TileGate)
	g.SetTile(pair.B, TileGate)
	return pair, nil
}

// ResolveEntry computes where an actor entering a gate comes out. Candidate
// exit directions start at the travel direction and turn clockwise; the first
// neighbor of the paired gate that is not a wall wins. ok is false when all
// four neighbors are blocked.
func (gp GatePair) ResolveEntry(g *Grid, entered Position, travel Direction) (exit Position, dir Direction, ok bool) {
	other := gp.Other(entered)
	dir = travel
	for range 4 {
		candidate := other.Step(dir)
		if !g.TileAt(candidate).Blocks() {
			return candidate, dir, true
		}
		dir = dir.Clockwise()
	}
	return Position{}, travel, false
}
