package domain

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/treasuremap/internal/controller"
	m "gooze.dev/pkg/treasuremap/internal/model"
)

type mockMazeFileAdapter struct {
	mock.Mock
}

func (a *mockMazeFileAdapter) ReadMaze(path m.Path) (m.MazeText, error) {
	args := a.Called(path)
	return args.Get(0).(m.MazeText), args.Error(1)
}

type mockReportStore struct {
	mock.Mock
}

func (s *mockReportStore) SaveReport(path m.Path, report m.Report) error {
	return s.Called(path, report).Error(0)
}

func (s *mockReportStore) LoadReport(path m.Path) (m.Report, error) {
	args := s.Called(path)
	return args.Get(0).(m.Report), args.Error(1)
}

func newTestWorkflow(mazes *mockMazeFileAdapter, reports *mockReportStore) (Workflow, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewWorkflow(mazes, reports, controller.NewSimpleUI(cmd), nil), out
}

func TestWorkflow_Search(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	reports := &mockReportStore{}
	mazes.On("ReadMaze", m.Path("maze1")).Return(mazeText(
		"WWWWWWW",
		"WT.S.TW",
		"WWWWWWW",
	), nil)

	wf, out := newTestWorkflow(mazes, reports)

	result, err := wf.Search(context.Background(), SearchArgs{ShowArgs: ShowArgs{Maze: "maze1"}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count())
	assert.Equal(t,
		"WWWWWWW\nWT.S.TW\nWWWWWWW\n\n"+
			"WWWWWWW\nW*****W\nWWWWWWW\n\n"+
			"Found 2 treasures\n",
		out.String(),
	)
	mazes.AssertExpectations(t)
	reports.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestWorkflow_SearchWritesReport(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	reports := &mockReportStore{}
	mazes.On("ReadMaze", m.Path("maze1")).Return(mazeText("S.T"), nil)
	reports.On("SaveReport", m.Path("out/report.yaml"), mock.MatchedBy(func(r m.Report) bool {
		return r.Maze == "maze1" &&
			r.Treasures == 1 &&
			r.Bounds == string(BoundsImpassable) &&
			r.RunID != "" &&
			len(r.Paths) == 3 &&
			len(r.Finds) == 1 &&
			len(r.Grid) == 1 && r.Grid[0] == "###"
	})).Return(nil)

	wf, out := newTestWorkflow(mazes, reports)

	_, err := wf.Search(context.Background(), SearchArgs{
		ShowArgs: ShowArgs{Maze: "maze1", Marker: '#'},
		Report:   "out/report.yaml",
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "S.T\n\n###\n\nFound 1 treasure\n")
	assert.Contains(t, out.String(), "Report written to out/report.yaml")
	reports.AssertExpectations(t)
}

func TestWorkflow_SearchSummary(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	mazes.On("ReadMaze", m.Path("maze1")).Return(mazeText("S.T"), nil)

	wf, out := newTestWorkflow(mazes, &mockReportStore{})

	_, err := wf.Search(context.Background(), SearchArgs{ShowArgs: ShowArgs{Maze: "maze1"}, Summary: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "(2, 0)")
	assert.Contains(t, out.String(), "Total 1")
}

func TestWorkflow_SearchPropagatesLoadError(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	loadErr := &m.FileLoadError{Path: "missing", Err: errors.New("no such file")}
	mazes.On("ReadMaze", m.Path("missing")).Return(m.MazeText{}, loadErr)

	wf, out := newTestWorkflow(mazes, &mockReportStore{})

	_, err := wf.Search(context.Background(), SearchArgs{ShowArgs: ShowArgs{Maze: "missing"}})

	var target *m.FileLoadError
	require.ErrorAs(t, err, &target)
	assert.Empty(t, out.String())
}

func TestWorkflow_SearchRejectsMalformedGrid(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	mazes.On("ReadMaze", m.Path("maze1")).Return(mazeText("..T"), nil)

	wf, out := newTestWorkflow(mazes, &mockReportStore{})

	_, err := wf.Search(context.Background(), SearchArgs{ShowArgs: ShowArgs{Maze: "maze1"}})

	var malformed *m.MalformedGridError
	require.ErrorAs(t, err, &malformed)
	assert.Empty(t, out.String())
}

func TestWorkflow_SearchStrictBounds(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	mazes.On("ReadMaze", m.Path("maze1")).Return(mazeText("S.T"), nil)

	wf, out := newTestWorkflow(mazes, &mockReportStore{})

	_, err := wf.Search(context.Background(), SearchArgs{ShowArgs: ShowArgs{Maze: "maze1"}, Bounds: BoundsStrict})

	var oob *m.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, "S.T\n\n", out.String())
}

func TestWorkflow_SearchReportFailure(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	reports := &mockReportStore{}
	mazes.On("ReadMaze", m.Path("maze1")).Return(mazeText("S.T"), nil)
	reports.On("SaveReport", m.Path("report.yaml"), mock.Anything).Return(errors.New("disk full"))

	wf, _ := newTestWorkflow(mazes, reports)

	result, err := wf.Search(context.Background(), SearchArgs{ShowArgs: ShowArgs{Maze: "maze1"}, Report: "report.yaml"})
	require.Error(t, err)
	assert.Equal(t, 1, result.Count())
}

func TestWorkflow_Show(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	mazes.On("ReadMaze", m.Path("maze1")).Return(mazeText("S.T", "WWW"), nil)

	wf, out := newTestWorkflow(mazes, &mockReportStore{})

	require.NoError(t, wf.Show(context.Background(), ShowArgs{Maze: "maze1"}))
	assert.Equal(t, "S.T\nWWW\n\n", out.String())
}

func TestWorkflow_CanceledContext(t *testing.T) {
	mazes := &mockMazeFileAdapter{}
	wf, _ := newTestWorkflow(mazes, &mockReportStore{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wf.Search(ctx, SearchArgs{ShowArgs: ShowArgs{Maze: "maze1"}})
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, wf.Show(ctx, ShowArgs{Maze: "maze1"}), context.Canceled)
	mazes.AssertNotCalled(t, "ReadMaze", mock.Anything)
}
