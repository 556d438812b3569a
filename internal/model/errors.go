package model

import "fmt"

// FileLoadError reports a maze file that could not be opened or read.
type FileLoadError struct {
	Path Path
	Err  error
}

func (e *FileLoadError) Error() string {
	return fmt.Sprintf("unable to open file %s: %v", e.Path, e.Err)
}

func (e *FileLoadError) Unwrap() error {
	return e.Err
}

// MalformedGridError reports a maze file whose content does not describe a
// valid grid. Line is 1-based; zero means the problem is not tied to a line.
type MalformedGridError struct {
	Path   Path
	Line   int
	Reason string
}

func (e *MalformedGridError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("malformed grid %s:%d: %s", e.Path, e.Line, e.Reason)
	case e.Path != "":
		return fmt.Sprintf("malformed grid %s: %s", e.Path, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("malformed grid at line %d: %s", e.Line, e.Reason)
	}

	return "malformed grid: " + e.Reason
}

// InvalidStateError reports an attempt to mark a non-passable cell visited.
type InvalidStateError struct {
	Coord Coord
	State CellState
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot mark %s cell %q at %s as visited", e.State, e.State.Rune(), e.Coord)
}

// OutOfBoundsError reports a coordinate outside the grid.
type OutOfBoundsError struct {
	Coord  Coord
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %s outside %dx%d grid", e.Coord, e.Width, e.Height)
}
