package world

import (
	"math/rand"
	"testing"
)

// borderGrid returns a rows x cols grid walled on every edge with immune corners.
func borderGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				g.SetTile(Position{r, c}, TileWall)
			}
		}
	}
	for _, p := range []Position{{0, 0}, {0, cols - 1}, {rows - 1, 0}, {rows - 1, cols - 1}} {
		g.SetTile(p, TileImmuneWall)
	}
	return g
}

func TestPlaceGatesUsesDistinctWalls(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := borderGrid(t, 6, 6)
		pair, err := PlaceGates(g, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: PlaceGates() error = %v", seed, err)
		}
		if pair.A == pair.B {
			t.Fatalf("seed %d: gates share a cell %v", seed, pair.A)
		}
		if g.TileAt(pair.A) != TileGate || g.TileAt(pair.B) != TileGate {
			t.Errorf("seed %d: gate tiles not set at %v / %v", seed, pair.A, pair.B)
		}
		if g.Count(TileImmuneWall) != 4 {
			t.Errorf("seed %d: immune wall converted to gate", seed)
		}
	}
}

func TestPlaceGatesReproducible(t *testing.T) {
	g1 := borderGrid(t, 8, 8)
	g2 := borderGrid(t, 8, 8)
	p1, _ := PlaceGates(g1, rand.New(rand.NewSource(12345)))
	p2, _ := PlaceGates(g2, rand.New(rand.NewSource(12345)))
	if p1 != p2 {
		t.Errorf("same seed produced %v and %v", p1, p2)
	}
}

func TestPlaceGatesNotEnoughWalls(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.SetTile(Position{0, 0}, TileWall)
	g.SetTile(Position{0, 1}, TileImmuneWall)
	g.SetTile(Position{0, 2}, TileImmuneWall)

	if _, err := PlaceGates(g, rand.New(rand.NewSource(1))); err != ErrNotEnoughWalls {
		t.Errorf("PlaceGates() error = %v, want ErrNotEnoughWalls", err)
	}
}

func TestResolveEntryPriority(t *testing.T) {
	// Exit gate B sits on the left wall at (3,0); only Right is open from it.
	g := borderGrid(t, 7, 7)
	pair := GatePair{A: Position{0, 3}, B: Position{3, 0}}
	g.SetTile(pair.A, TileGate)
	g.SetTile(pair.B, TileGate)

	tests := []struct {
		name     string
		travel   Direction
		wantExit Position
		wantDir  Direction
	}{
		{"straight through", DirRight, Position{3, 1}, DirRight},
		{"up turns clockwise to right", DirUp, Position{3, 1}, DirRight},
		{"down wraps through left to up to right", DirDown, Position{3, 1}, DirRight},
		{"left goes up then right", DirLeft, Position{3, 1}, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exit, dir, ok := pair.ResolveEntry(g, pair.A, tt.travel)
			if !ok {
				t.Fatal("ResolveEntry() blocked, want exit")
			}
			if exit != tt.wantExit || dir != tt.wantDir {
				t.Errorf("ResolveEntry() = %v %v, want %v %v", exit, dir, tt.wantExit, tt.wantDir)
			}
		})
	}
}

func TestResolveEntryFirstEligibleNeighbor(t *testing.T) {
	// Free-standing exit gate in the middle: travel direction wins when open,
	// otherwise the next clockwise open neighbor.
	g, _ := NewGrid(5, 5)
	pair := GatePair{A: Position{0, 0}, B: Position{2, 2}}
	g.SetTile(pair.A, TileGate)
	g.SetTile(pair.B, TileGate)
	g.SetTile(Position{1, 2}, TileWall)       // up
	g.SetTile(Position{2, 3}, TileImmuneWall) // right
	g.SetTile(Position{3, 2}, TileGrowth)     // down

	exit, dir, ok := pair.ResolveEntry(g, pair.A, DirUp)
	if !ok || exit != (Position{3, 2}) || dir != DirDown {
		t.Errorf("ResolveEntry(up) = %v %v %v, want (3,2) down true", exit, dir, ok)
	}

	exit, dir, ok = pair.ResolveEntry(g, pair.A, DirLeft)
	if !ok || exit != (Position{2, 1}) || dir != DirLeft {
		t.Errorf("ResolveEntry(left) = %v %v %v, want (2,1) left true", exit, dir, ok)
	}

	// Entering B leads out of A at the corner; only Right/Down are on-grid.
	exit, dir, ok = pair.ResolveEntry(g, pair.B, DirUp)
	if !ok || exit != (Position{0, 1}) || dir != DirRight {
		t.Errorf("ResolveEntry(B, up) = %v %v %v, want (0,1) right true", exit, dir, ok)
	}
}

func TestResolveEntryBlocked(t *testing.T) {
	g := borderGrid(t, 5, 5)
	pair := GatePair{A: Position{0, 2}, B: Position{2, 2}}
	g.SetTile(pair.A, TileGate)
	g.SetTile(pair.B, TileGate)
	for _, d := range Directions {
		g.SetTile(pair.B.Step(d), TileWall)
	}

	if _, _, ok := pair.ResolveEntry(g, pair.A, DirDown); ok {
		t.Error("ResolveEntry() found an exit, want blocked")
	}
}

func TestResolveEntryGateLandingAllowed(t *testing.T) {
	g, _ := NewGrid(1, 3)
	pair := GatePair{A: Position{0, 1}, B: Position{0, 2}}
	g.SetTile(pair.A, TileGate)
	g.SetTile(pair.B, TileGate)

	exit, dir, ok := pair.ResolveEntry(g, pair.A, DirLeft)
	if !ok || exit != (Position{0, 1}) || dir != DirLeft {
		t.Errorf("ResolveEntry() = %v %v %v, want (0,1) left true", exit, dir, ok)
	}
}
