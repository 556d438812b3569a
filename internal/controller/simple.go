package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/treasuremap/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayGrid prints the grid as plain characters.
func (s *SimpleUI) DisplayGrid(ctx context.Context, grid GridView, marker rune) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", grid.RenderWith(marker))

	return nil
}

// DisplayTreasureCount prints the count line.
func (s *SimpleUI) DisplayTreasureCount(ctx context.Context, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", FormatTreasureCount(count))

	return nil
}

// DisplaySummary prints a table of discovered treasures.
func (s *SimpleUI) DisplaySummary(ctx context.Context, result m.SearchResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(result))

	return nil
}

// DisplayReportSaved tells the user where the report went.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report written to %s\n", path)
}

func renderSummaryTable(result m.SearchResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Treasure", "Route length"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for i, find := range result.Finds {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			find.Treasure.String(),
			fmt.Sprintf("%d", len(find.Route)),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Steps %d / Backtracks %d", result.Advances, result.Backtracks),
		fmt.Sprintf("Total %d", result.Count()),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
