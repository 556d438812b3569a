package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	m "gooze.dev/pkg/treasuremap/internal/model"
)

// BoundsPolicy decides what happens when a neighbour lies outside the grid.
type BoundsPolicy string

const (
	// BoundsImpassable treats cells outside the grid as walls.
	BoundsImpassable BoundsPolicy = "impassable"
	// BoundsStrict requires the walk never to look outside the grid, so a
	// reachable cell on the edge must be walled off. Violations abort the search.
	BoundsStrict BoundsPolicy = "strict"
)

// ParseBoundsPolicy validates a policy name.
func ParseBoundsPolicy(name string) (BoundsPolicy, error) {
	switch p := BoundsPolicy(name); p {
	case BoundsImpassable, BoundsStrict:
		return p, nil
	}

	return "", fmt.Errorf("unknown bounds policy %q (want %q or %q)", name, BoundsImpassable, BoundsStrict)
}

// DefaultDirections is the neighbour priority: right, down, up, left. The
// order decides which walk gets recorded, not only what is reachable.
var DefaultDirections = []m.Coord{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// Searcher walks a grid depth first, always stepping into the first passable
// neighbour in priority order and backtracking when none is left.
type Searcher interface {
	Search(ctx context.Context, grid *Grid) (m.SearchResult, error)
}

// SearchOption configures a Searcher.
type SearchOption func(*searcher)

// WithBoundsPolicy sets how out-of-range neighbours are handled.
func WithBoundsPolicy(policy BoundsPolicy) SearchOption {
	return func(s *searcher) {
		s.bounds = policy
	}
}

// WithDirections replaces the neighbour priority order.
func WithDirections(directions []m.Coord) SearchOption {
	return func(s *searcher) {
		s.directions = append([]m.Coord(nil), directions...)
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(logger *slog.Logger) SearchOption {
	return func(s *searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type searcher struct {
	bounds     BoundsPolicy
	directions []m.Coord
	logger     *slog.Logger
}

// NewSearcher builds a Searcher. Without options it uses DefaultDirections,
// BoundsImpassable and a discarding logger.
func NewSearcher(options ...SearchOption) Searcher {
	s := &searcher{
		bounds:     BoundsImpassable,
		directions: DefaultDirections,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Search consumes the grid: every cell it steps onto stays visited, so a
// second search over the same grid finds nothing.
func (s *searcher) Search(ctx context.Context, grid *Grid) (m.SearchResult, error) {
	var result m.SearchResult

	if err := ctx.Err(); err != nil {
		return result, err
	}

	found := m.NewCoordSet()
	stack := []m.Coord{grid.Start()}

	s.logger.Debug("search started", "start", grid.Start(), "bounds", s.bounds)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		next, advanced, err := s.nextStep(grid, curr)
		if err != nil {
			return result, err
		}

		if advanced {
			stack = append(stack, next)
			if err := grid.MarkVisited(next); err != nil {
				return result, fmt.Errorf("advancing from %s: %w", curr, err)
			}

			result.Advances++
			s.logger.Debug("advanced", "from", curr, "to", next, "depth", len(stack))
		} else {
			stack = stack[:len(stack)-1]
			result.Backtracks++
			s.logger.Debug("backtracked", "from", curr, "depth", len(stack))
		}

		// curr is checked even after it was popped. It is recorded along with
		// the stack so a treasure at a dead end stays on its own route.
		if grid.IsTreasure(curr) {
			if !found.Contains(curr) {
				found.Insert(curr)

				route := routeTo(stack, curr, advanced)
				result.Finds = append(result.Finds, m.Find{Treasure: curr, Route: route})
				s.logger.Info("treasure found", "at", curr, "route_length", len(route))
			}

			grid.RecordPath(stack...)
			grid.RecordPath(curr)
		}
	}

	s.logger.Debug("search finished",
		"treasures", result.Count(),
		"advances", result.Advances,
		"backtracks", result.Backtracks,
	)

	return result, nil
}

// routeTo returns the walk from the start to curr given the stack after this
// iteration's push (advanced) or pop.
func routeTo(stack []m.Coord, curr m.Coord, advanced bool) []m.Coord {
	if advanced {
		return append([]m.Coord(nil), stack[:len(stack)-1]...)
	}

	route := make([]m.Coord, 0, len(stack)+1)
	route = append(route, stack...)

	return append(route, curr)
}

func (s *searcher) nextStep(grid *Grid, curr m.Coord) (m.Coord, bool, error) {
	for _, delta := range s.directions {
		candidate := curr.Add(delta)

		if !grid.InBounds(candidate) {
			if s.bounds == BoundsStrict {
				return m.Coord{}, false, &m.OutOfBoundsError{
					Coord:  candidate,
					Width:  grid.Width(),
					Height: grid.Height(),
				}
			}

			continue
		}

		if grid.IsPassable(candidate) {
			return candidate, true, nil
		}
	}

	return m.Coord{}, false, nil
}
