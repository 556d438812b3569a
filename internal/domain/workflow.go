// Package domain holds the maze grid, the treasure search and the workflow
// that runs them for the CLI.
package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"gooze.dev/pkg/treasuremap/internal/adapter"
	"gooze.dev/pkg/treasuremap/internal/controller"
	m "gooze.dev/pkg/treasuremap/internal/model"
)

// ShowArgs holds the arguments for rendering a maze without searching.
type ShowArgs struct {
	Maze   m.Path
	Marker rune
}

// SearchArgs holds the arguments for a full search run.
type SearchArgs struct {
	ShowArgs

	Bounds  BoundsPolicy
	Summary bool
	Report  m.Path
}

// Workflow loads mazes, searches them and presents the results.
type Workflow interface {
	Show(ctx context.Context, args ShowArgs) error
	Search(ctx context.Context, args SearchArgs) (m.SearchResult, error)
}

type workflow struct {
	mazes   adapter.MazeFileAdapter
	reports adapter.ReportStore
	ui      controller.UI
	logger  *slog.Logger
}

// NewWorkflow wires a Workflow to its adapters and UI. A nil logger discards
// log output.
func NewWorkflow(
	mazes adapter.MazeFileAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &workflow{
		mazes:   mazes,
		reports: reports,
		ui:      ui,
		logger:  logger,
	}
}

func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	grid, err := w.loadGrid(args.Maze, w.logger)
	if err != nil {
		return err
	}

	return w.ui.DisplayGrid(ctx, grid, markerOrDefault(args.Marker))
}

// Search renders the maze, searches it, renders the result and reports the
// treasure count. With a report path set the run is also saved to disk.
func (w *workflow) Search(ctx context.Context, args SearchArgs) (m.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return m.SearchResult{}, err
	}

	runID := uuid.NewString()
	logger := w.logger.With("run_id", runID, "maze", args.Maze)
	marker := markerOrDefault(args.Marker)

	bounds := args.Bounds
	if bounds == "" {
		bounds = BoundsImpassable
	}

	grid, err := w.loadGrid(args.Maze, logger)
	if err != nil {
		return m.SearchResult{}, err
	}

	if err := w.ui.DisplayGrid(ctx, grid, marker); err != nil {
		return m.SearchResult{}, err
	}

	searcher := NewSearcher(WithBoundsPolicy(bounds), WithLogger(logger))

	result, err := searcher.Search(ctx, grid)
	if err != nil {
		logger.Error("search failed", "error", err)
		return result, fmt.Errorf("search %s: %w", args.Maze, err)
	}

	logger.Info("search completed", "treasures", result.Count(), "path_cells", len(grid.Paths()))

	if err := w.ui.DisplayGrid(ctx, grid, marker); err != nil {
		return result, err
	}

	if err := w.ui.DisplayTreasureCount(ctx, result.Count()); err != nil {
		return result, err
	}

	if args.Summary {
		if err := w.ui.DisplaySummary(ctx, result); err != nil {
			return result, err
		}
	}

	if args.Report != "" {
		report := buildReport(runID, args.Maze, bounds, grid, result, marker)
		if err := w.reports.SaveReport(args.Report, report); err != nil {
			logger.Error("failed to save report", "path", args.Report, "error", err)
			return result, err
		}

		logger.Debug("report saved", "path", args.Report)
		w.ui.DisplayReportSaved(ctx, args.Report)
	}

	return result, nil
}

func (w *workflow) loadGrid(path m.Path, logger *slog.Logger) (*Grid, error) {
	text, err := w.mazes.ReadMaze(path)
	if err != nil {
		logger.Error("failed to load maze", "error", err)
		return nil, err
	}

	grid, err := NewGrid(text)
	if err != nil {
		logger.Error("invalid maze", "error", err)
		return nil, err
	}

	logger.Debug("maze loaded", "width", grid.Width(), "height", grid.Height(), "start", grid.Start())

	return grid, nil
}

func markerOrDefault(marker rune) rune {
	if marker == 0 {
		return m.DefaultPathMarker
	}

	return marker
}

func buildReport(runID string, maze m.Path, bounds BoundsPolicy, grid *Grid, result m.SearchResult, marker rune) m.Report {
	finds := make([]m.ReportFind, 0, len(result.Finds))
	for _, find := range result.Finds {
		finds = append(finds, m.ReportFind{
			Treasure: m.NewReportCoord(find.Treasure),
			Route:    m.NewReportCoords(find.Route),
		})
	}

	rendered := strings.TrimSuffix(grid.RenderWith(marker), "\n\n")

	return m.Report{
		RunID:      runID,
		Maze:       maze,
		Width:      grid.Width(),
		Height:     grid.Height(),
		Start:      m.NewReportCoord(grid.Start()),
		Bounds:     string(bounds),
		Treasures:  result.Count(),
		Advances:   result.Advances,
		Backtracks: result.Backtracks,
		Finds:      finds,
		Paths:      m.NewReportCoords(grid.Paths()),
		Grid:       strings.Split(rendered, "\n"),
	}
}
