package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/treasuremap/internal/model"
)

// StyledUI is a SimpleUI that colours grid cells for terminals.
type StyledUI struct {
	*SimpleUI

	path     lipgloss.Style
	start    lipgloss.Style
	wall     lipgloss.Style
	treasure lipgloss.Style
	visited  lipgloss.Style
}

// NewStyledUI creates a StyledUI rendering for the command's output.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &StyledUI{
		SimpleUI: NewSimpleUI(cmd),
		path:     r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		start:    r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		wall:     r.NewStyle().Foreground(lipgloss.Color("240")),
		treasure: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		visited:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// DisplayGrid prints the grid one styled cell at a time.
func (s *StyledUI) DisplayGrid(ctx context.Context, grid GridView, marker rune) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			b.WriteString(s.cell(grid, m.Coord{X: x, Y: y}, marker))
		}

		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	s.printf("%s", b.String())

	return nil
}

func (s *StyledUI) cell(grid GridView, c m.Coord, marker rune) string {
	if grid.OnPath(c) {
		return s.path.Render(string(marker))
	}

	state, _ := grid.State(c)
	text := string(state.Rune())

	switch state {
	case m.Wall:
		return s.wall.Render(text)
	case m.Start:
		return s.start.Render(text)
	case m.Treasure:
		return s.treasure.Render(text)
	case m.VisitedTreasure:
		return s.visited.Render(text)
	default:
		return text
	}
}
