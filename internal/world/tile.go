// Package world provides the stage grid, tile kinds and teleport gates.
package world

// Tile represents the contents of a single grid cell.
type Tile int

const (
	// TileEmpty is a free cell the actor can move into.
	TileEmpty Tile = iota
	// TileWall is a wall that may host a gate.
	TileWall
	// TileImmuneWall blocks like a wall but never hosts a gate.
	TileImmuneWall
	// TileGrowth is a growth item; eating it lengthens the actor.
	TileGrowth
	// TilePoison is a poison item; eating it shortens the actor.
	TilePoison
	// TileGate is one half of the stage's gate pair.
	TileGate
	// TileBlocked is returned for reads outside the grid.
	TileBlocked
)

// Blocks returns true if moving into the tile is a wall collision.
func (t Tile) Blocks() bool {
	return t == TileWall || t == TileImmuneWall || t == TileBlocked
}

// IsItem returns true for growth and poison tiles.
func (t Tile) IsItem() bool {
	return t == TileGrowth || t == TilePoison
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileEmpty:
		return ' '
	case TileWall:
		return '#'
	case TileImmuneWall:
		return '*'
	case TileGrowth:
		return '+'
	case TilePoison:
		return '-'
	case TileGate:
		return 'G'
	default:
		return '?'
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileImmuneWall:
		return "immune_wall"
	case TileGrowth:
		return "growth"
	case TilePoison:
		return "poison"
	case TileGate:
		return "gate"
	case TileBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}
