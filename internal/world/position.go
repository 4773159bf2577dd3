package world

import "fmt"

// Position is a (row, column) cell coordinate on the grid.
type Position struct {
	Row, Col int
}

// Step returns the neighboring position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four grid travel directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every direction in clockwise order starting at Up.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the (row, column) unit vector for the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Clockwise returns the next direction turning clockwise (Up→Right→Down→Left→Up).
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
