package model

// CellState is the state of a single maze cell.
type CellState int

const (
	// Wall is never passable and never changes.
	Wall CellState = iota
	// Open is a passable empty cell.
	Open
	// Treasure is a passable cell holding treasure.
	Treasure
	// VisitedOpen is an Open cell the search has stepped onto.
	VisitedOpen
	// VisitedTreasure is a Treasure cell the search has stepped onto.
	VisitedTreasure
	// Start is the entry cell. The walk begins there but never re-enters it.
	Start
)

// Characters used in maze files and rendered output.
const (
	WallChar            = 'W'
	OpenChar            = '.'
	TreasureChar        = 'T'
	VisitedOpenChar     = ' '
	VisitedTreasureChar = 't'
	StartChar           = 'S'

	// DefaultPathMarker replaces every recorded path cell when rendering.
	DefaultPathMarker = '*'
)

// ParseCellState maps a maze file character to its state. Only the loadable
// alphabet (W . T S) is accepted.
func ParseCellState(r rune) (CellState, bool) {
	switch r {
	case WallChar:
		return Wall, true
	case OpenChar:
		return Open, true
	case TreasureChar:
		return Treasure, true
	case StartChar:
		return Start, true
	}

	return Wall, false
}

// Rune returns the character used to render the state.
func (s CellState) Rune() rune {
	switch s {
	case Wall:
		return WallChar
	case Open:
		return OpenChar
	case Treasure:
		return TreasureChar
	case VisitedOpen:
		return VisitedOpenChar
	case VisitedTreasure:
		return VisitedTreasureChar
	case Start:
		return StartChar
	}

	return '?'
}

func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Treasure:
		return "treasure"
	case VisitedOpen:
		return "visited open"
	case VisitedTreasure:
		return "visited treasure"
	case Start:
		return "start"
	}

	return "unknown"
}

// Passable reports whether the search may step onto a cell in this state.
func (s CellState) Passable() bool {
	return s == Open || s == Treasure
}

// HasTreasure reports whether the cell holds treasure, visited or not.
func (s CellState) HasTreasure() bool {
	return s == Treasure || s == VisitedTreasure
}

// Visited returns the state a passable cell takes once stepped onto.
func (s CellState) Visited() (CellState, bool) {
	switch s {
	case Open:
		return VisitedOpen, true
	case Treasure:
		return VisitedTreasure, true
	}

	return s, false
}
