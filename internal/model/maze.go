package model

// Path represents a file system path.
type Path string

// MazeText is a maze file split into its header and rows, before validation.
type MazeText struct {
	Source Path
	Width  int
	Height int
	Rows   []string

	// FirstRowLine is the 1-based file line holding Rows[0].
	FirstRowLine int
}

// Find records the first time a treasure was reached.
type Find struct {
	Treasure Coord

	// Route is the exploration stack at the moment of discovery.
	Route []Coord
}

// SearchResult describes one completed search.
type SearchResult struct {
	// Finds lists distinct treasures in discovery order.
	Finds      []Find
	Advances   int
	Backtracks int
}

// Count returns the number of distinct treasures found.
func (r SearchResult) Count() int {
	return len(r.Finds)
}
