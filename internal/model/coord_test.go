package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoord(t *testing.T) {
	c := Coord{X: 2, Y: 3}

	assert.Equal(t, Coord{X: 3, Y: 2}, c.Add(Coord{X: 1, Y: -1}))
	assert.Equal(t, "(2, 3)", c.String())
	assert.True(t, Coord{X: 9, Y: 0}.Less(Coord{X: 0, Y: 1}))
	assert.True(t, Coord{X: 0, Y: 1}.Less(Coord{X: 1, Y: 1}))
	assert.False(t, c.Less(c))
}

func TestCoordSet(t *testing.T) {
	set := NewCoordSet()
	set.Insert(Coord{X: 1, Y: 1}, Coord{X: 0, Y: 1})
	set.Insert(Coord{X: 1, Y: 1}, Coord{X: 5, Y: 0})

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(Coord{X: 0, Y: 1}))
	assert.False(t, set.Contains(Coord{X: 0, Y: 0}))
	assert.Equal(t, []Coord{{X: 5, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, set.Sorted())
}

func TestCoordSet_ZeroValue(t *testing.T) {
	var set CoordSet

	assert.False(t, set.Contains(Coord{}))
	set.Insert(Coord{})
	assert.True(t, set.Contains(Coord{}))
	assert.Equal(t, 1, set.Len())
}

func TestErrorMessages(t *testing.T) {
	inner := errors.New("permission denied")
	loadErr := &FileLoadError{Path: "maze1", Err: inner}
	assert.Equal(t, "unable to open file maze1: permission denied", loadErr.Error())
	assert.ErrorIs(t, loadErr, inner)

	assert.Equal(t, "malformed grid maze1:3: row too short",
		(&MalformedGridError{Path: "maze1", Line: 3, Reason: "row too short"}).Error())
	assert.Equal(t, "malformed grid maze1: no start",
		(&MalformedGridError{Path: "maze1", Reason: "no start"}).Error())
	assert.Equal(t, "malformed grid: no start",
		(&MalformedGridError{Reason: "no start"}).Error())

	assert.Equal(t, "cannot mark wall cell 'W' at (1, 2) as visited",
		(&InvalidStateError{Coord: Coord{X: 1, Y: 2}, State: Wall}).Error())
	assert.Equal(t, "coordinate (3, 0) outside 3x1 grid",
		(&OutOfBoundsError{Coord: Coord{X: 3}, Width: 3, Height: 1}).Error())
}

func TestSearchResultCount(t *testing.T) {
	assert.Equal(t, 0, SearchResult{}.Count())
	assert.Equal(t, 2, SearchResult{Finds: make([]Find, 2)}.Count())
}
