// Package adapter contains the filesystem adapters used by the treasuremap
// workflow.
package adapter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "gooze.dev/pkg/treasuremap/internal/model"
)

// MazeFileAdapter reads maze files. It hides direct `os` access so the
// workflow can be tested without touching the disk.
type MazeFileAdapter interface {
	// ReadMaze loads the header and rows of the maze stored at path.
	ReadMaze(path m.Path) (m.MazeText, error)
}

// LocalMazeFileAdapter reads mazes from the local filesystem.
type LocalMazeFileAdapter struct{}

// NewLocalMazeFileAdapter constructs a LocalMazeFileAdapter.
func NewLocalMazeFileAdapter() *LocalMazeFileAdapter {
	return &LocalMazeFileAdapter{}
}

// ReadMaze opens path and parses it with ParseMaze.
func (a *LocalMazeFileAdapter) ReadMaze(path m.Path) (m.MazeText, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return m.MazeText{}, &m.FileLoadError{Path: path, Err: err}
	}

	defer func() {
		_ = f.Close()
	}()

	return ParseMaze(path, f)
}

// ParseMaze splits a maze file into its `width height` header and the rows
// that follow. Row contents are validated later, when the grid is built;
// this only checks the header and that no stray lines follow the rows.
func ParseMaze(path m.Path, r io.Reader) (m.MazeText, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	text := m.MazeText{Source: path}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if lineNo == 1 {
			width, height, err := parseHeader(line)
			if err != nil {
				return m.MazeText{}, &m.MalformedGridError{Path: path, Line: lineNo, Reason: err.Error()}
			}

			text.Width, text.Height = width, height
			text.FirstRowLine = lineNo + 1

			continue
		}

		if len(text.Rows) < text.Height {
			text.Rows = append(text.Rows, line)
			continue
		}

		if strings.TrimSpace(line) != "" {
			return m.MazeText{}, &m.MalformedGridError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("unexpected content after %d rows", text.Height),
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return m.MazeText{}, &m.FileLoadError{Path: path, Err: err}
	}

	if lineNo == 0 {
		return m.MazeText{}, &m.MalformedGridError{Path: path, Reason: "missing header"}
	}

	return text, nil
}

func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("header %q must be \"width height\"", line)
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", fields[0])
	}

	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", fields[1])
	}

	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("dimensions %dx%d must both be at least 1", width, height)
	}

	return width, height, nil
}
