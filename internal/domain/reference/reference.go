// Package reference holds the static lookup data the search service keys on:
// oceans, seas scoped to an ocean, and species.
package reference

// Ocean is a named ocean with its service identifier.
type Ocean struct {
	ID   int64
	Name string
}

// Sea is a named sea inside exactly one ocean.
type Sea struct {
	ID      int64
	Name    string
	OceanID int64
}

// Species maps a display name to the canonical name the search service queries by.
type Species struct {
	Name      string
	QueryName string
}
