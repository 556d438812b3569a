package model

import "sort"

// CoordSet is an unordered set of coordinates.
type CoordSet struct {
	m map[Coord]struct{}
}

// NewCoordSet creates an empty set.
func NewCoordSet() CoordSet {
	return CoordSet{
		m: make(map[Coord]struct{}),
	}
}

// Insert adds every coordinate to the set.
func (set *CoordSet) Insert(coords ...Coord) {
	if set.m == nil {
		set.m = make(map[Coord]struct{}, len(coords))
	}

	for _, c := range coords {
		set.m[c] = struct{}{}
	}
}

// Contains reports whether c is a member of the set.
func (set CoordSet) Contains(c Coord) bool {
	_, present := set.m[c]
	return present
}

// Len returns the number of members.
func (set CoordSet) Len() int {
	return len(set.m)
}

// Sorted returns the members ordered by Coord.Less.
func (set CoordSet) Sorted() []Coord {
	coords := make([]Coord, 0, len(set.m))
	for c := range set.m {
		coords = append(coords, c)
	}

	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})

	return coords
}
