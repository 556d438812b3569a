package domain

import (
	"fmt"
	"strings"

	m "gooze.dev/pkg/treasuremap/internal/model"
)

// Grid is a fixed-size maze whose cells are mutated in place by a search.
// Cells are indexed [x][y].
type Grid struct {
	width  int
	height int
	cells  [][]m.CellState
	start  m.Coord
	paths  m.CoordSet
}

// NewGrid validates the loaded maze text and builds a Grid from it.
func NewGrid(text m.MazeText) (*Grid, error) {
	malformed := func(line int, format string, args ...interface{}) error {
		return &m.MalformedGridError{Path: text.Source, Line: line, Reason: fmt.Sprintf(format, args...)}
	}

	if text.Width < 1 || text.Height < 1 {
		return nil, malformed(0, "dimensions %dx%d must both be at least 1", text.Width, text.Height)
	}

	if len(text.Rows) != text.Height {
		return nil, malformed(0, "header declares %d rows, found %d", text.Height, len(text.Rows))
	}

	// Rows are checked against the header before the grid is allocated.
	rows := make([][]m.CellState, text.Height)

	var starts []m.Coord

	for y, row := range text.Rows {
		line := lineOf(text, y)
		runes := []rune(row)

		if len(runes) != text.Width {
			return nil, malformed(line, "row has %d characters, expected %d", len(runes), text.Width)
		}

		rows[y] = make([]m.CellState, text.Width)

		for x, r := range runes {
			state, ok := m.ParseCellState(r)
			if !ok {
				return nil, malformed(line, "unexpected character %q at column %d", r, x+1)
			}

			if state == m.Start {
				starts = append(starts, m.Coord{X: x, Y: y})
			}

			rows[y][x] = state
		}
	}

	switch len(starts) {
	case 0:
		return nil, malformed(0, "no start cell %q", m.StartChar)
	case 1:
	default:
		return nil, malformed(0, "%d start cells %q, expected exactly one", len(starts), m.StartChar)
	}

	cells := make([][]m.CellState, text.Width)
	for x := range cells {
		cells[x] = make([]m.CellState, text.Height)
		for y := range rows {
			cells[x][y] = rows[y][x]
		}
	}

	return &Grid{
		width:  text.Width,
		height: text.Height,
		cells:  cells,
		start:  starts[0],
		paths:  m.NewCoordSet(),
	}, nil
}

func lineOf(text m.MazeText, row int) int {
	if text.FirstRowLine <= 0 {
		return 0
	}

	return text.FirstRowLine + row
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the entry cell.
func (g *Grid) Start() m.Coord { return g.start }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c m.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// State returns the current state of c. The second result is false when c is
// out of bounds.
func (g *Grid) State(c m.Coord) (m.CellState, bool) {
	if !g.InBounds(c) {
		return m.Wall, false
	}

	return g.cells[c.X][c.Y], true
}

// IsPassable reports whether the search may step onto c. Cells outside the
// grid are never passable.
func (g *Grid) IsPassable(c m.Coord) bool {
	state, ok := g.State(c)
	return ok && state.Passable()
}

// MarkVisited moves an Open or Treasure cell to its visited counterpart.
func (g *Grid) MarkVisited(c m.Coord) error {
	state, ok := g.State(c)
	if !ok {
		return &m.OutOfBoundsError{Coord: c, Width: g.width, Height: g.height}
	}

	visited, ok := state.Visited()
	if !ok {
		return &m.InvalidStateError{Coord: c, State: state}
	}

	g.cells[c.X][c.Y] = visited

	return nil
}

// IsTreasure reports whether c holds treasure, whether visited or not.
func (g *Grid) IsTreasure(c m.Coord) bool {
	state, ok := g.State(c)
	return ok && state.HasTreasure()
}

// RecordPath adds coords to the recorded path set.
func (g *Grid) RecordPath(coords ...m.Coord) {
	g.paths.Insert(coords...)
}

// Paths returns the recorded path cells, row by row.
func (g *Grid) Paths() []m.Coord {
	return g.paths.Sorted()
}

// OnPath reports whether c is a recorded path cell.
func (g *Grid) OnPath(c m.Coord) bool {
	return g.paths.Contains(c)
}

// Render draws the grid with the default path marker.
func (g *Grid) Render() string {
	return g.RenderWith(m.DefaultPathMarker)
}

// RenderWith draws one line per row, replacing recorded path cells with
// marker, and ends with an extra blank line.
func (g *Grid) RenderWith(marker rune) string {
	var b strings.Builder

	b.Grow((g.width + 1) * (g.height + 1))

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := m.Coord{X: x, Y: y}
			if g.paths.Contains(c) {
				b.WriteRune(marker)
				continue
			}

			b.WriteRune(g.cells[x][y].Rune())
		}

		b.WriteByte('\n')
	}

	b.WriteByte('\n')

	return b.String()
}
