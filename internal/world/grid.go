package world

import (
	"errors"
	"iter"
)

// ErrInvalidSize is returned when a grid would have no cells.
var ErrInvalidSize = errors.New("grid must have at least one row and one column")

// Grid is a fixed-size rectangular tile map. Its dimensions never change
// after construction; only cell contents do.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid creates a grid of the given size filled with empty tiles.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidSize
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// TileAt returns the tile at the given position, or TileBlocked when the
// position is off the grid.
func (g *Grid) TileAt(p Position) Tile {
	if !g.InBounds(p) {
		return TileBlocked
	}
	return g.tiles[p.Row*g.cols+p.Col]
}

// SetTile replaces the tile at the given position. Out-of-range writes are ignored.
func (g *Grid) SetTile(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.tiles[p.Row*g.cols+p.Col] = t
}

// PositionsOf yields, in row-major order, every position holding the given tile.
// The sequence is evaluated lazily and may be iterated more than once.
func (g *Grid) PositionsOf(kind Tile) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i, t := range g.tiles {
			if t != kind {
				continue
			}
			if !yield(Position{Row: i / g.cols, Col: i % g.cols}) {
				return
			}
		}
	}
}

// Count returns the number of cells holding the given tile.
func (g *Grid) Count(kind Tile) int {
	n := 0
	for range g.PositionsOf(kind) {
		n++
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{rows: g.rows, cols: g.cols, tiles: tiles}
}
