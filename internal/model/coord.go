// Package model defines the value types shared by the maze loader, the search
// engine and the renderers.
package model

import "fmt"

// Coord is a (column, row) position in a maze grid. X grows to the right and
// Y grows downwards.
type Coord struct {
	X int
	Y int
}

// Add returns the coordinate offset by delta.
func (c Coord) Add(delta Coord) Coord {
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Less orders coordinates row by row, then column by column.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}

	return c.X < other.X
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
