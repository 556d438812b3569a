// Package controller provides the console views for maze grids and search
// results.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/treasuremap/internal/model"
)

// GridView is the read-only grid surface the UI draws from.
type GridView interface {
	Width() int
	Height() int
	State(c m.Coord) (m.CellState, bool)
	OnPath(c m.Coord) bool
	RenderWith(marker rune) string
}

// UI defines how the workflow presents grids and results.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplayGrid(ctx context.Context, grid GridView, marker rune) error
	DisplayTreasureCount(ctx context.Context, count int) error
	DisplaySummary(ctx context.Context, result m.SearchResult) error
	DisplayReportSaved(ctx context.Context, path m.Path)
}

// NewUI picks the styled UI when colour is requested and the output is a
// terminal, and the plain UI otherwise.
func NewUI(cmd *cobra.Command, color bool) UI {
	if color && IsTTY(cmd.OutOrStdout()) {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatTreasureCount returns the human-readable count line.
func FormatTreasureCount(count int) string {
	switch count {
	case 0:
		return "No treasure found"
	case 1:
		return "Found 1 treasure"
	}

	return fmt.Sprintf("Found %d treasures", count)
}
