package model

// Report is the persisted summary of one search run.
type Report struct {
	RunID      string        `yaml:"run_id"`
	Maze       Path          `yaml:"maze"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Start      ReportCoord   `yaml:"start"`
	Bounds     string        `yaml:"bounds"`
	Treasures  int           `yaml:"treasures"`
	Advances   int           `yaml:"advances"`
	Backtracks int           `yaml:"backtracks"`
	Finds      []ReportFind  `yaml:"finds"`
	Paths      []ReportCoord `yaml:"paths"`
	Grid       []string      `yaml:"grid"`
}

// ReportCoord is a coordinate in report form.
type ReportCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ReportFind is a discovered treasure in report form.
type ReportFind struct {
	Treasure ReportCoord   `yaml:"treasure"`
	Route    []ReportCoord `yaml:"route"`
}

// NewReportCoord converts c to its report form.
func NewReportCoord(c Coord) ReportCoord {
	return ReportCoord{X: c.X, Y: c.Y}
}

// NewReportCoords converts coords to their report form.
func NewReportCoords(coords []Coord) []ReportCoord {
	out := make([]ReportCoord, 0, len(coords))
	for _, c := range coords {
		out = append(out, NewReportCoord(c))
	}

	return out
}
