package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCellState(t *testing.T) {
	tests := []struct {
		r    rune
		want CellState
		ok   bool
	}{
		{'W', Wall, true},
		{'.', Open, true},
		{'T', Treasure, true},
		{'S', Start, true},
		{' ', Wall, false},
		{'t', Wall, false},
		{'x', Wall, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got, ok := ParseCellState(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellState_Transitions(t *testing.T) {
	tests := []struct {
		state      CellState
		passable   bool
		treasure   bool
		visited    CellState
		canVisit   bool
		renderedAs rune
	}{
		{Wall, false, false, Wall, false, 'W'},
		{Open, true, false, VisitedOpen, true, '.'},
		{Treasure, true, true, VisitedTreasure, true, 'T'},
		{VisitedOpen, false, false, VisitedOpen, false, ' '},
		{VisitedTreasure, false, true, VisitedTreasure, false, 't'},
		{Start, false, false, Start, false, 'S'},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.passable, tt.state.Passable())
			assert.Equal(t, tt.treasure, tt.state.HasTreasure())
			assert.Equal(t, tt.renderedAs, tt.state.Rune())

			visited, ok := tt.state.Visited()
			assert.Equal(t, tt.canVisit, ok)
			assert.Equal(t, tt.visited, visited)
		})
	}
}
