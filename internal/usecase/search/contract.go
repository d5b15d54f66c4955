package search

import "context"

// Lookup resolves names to the identifiers the search service expects.
// A miss is a nil result, not an error.
type Lookup interface {
	OceanID(ctx context.Context, name string) (*int64, error)
	SeaID(ctx context.Context, name string, oceanID *int64) (*int64, error)
	SpeciesQueryName(ctx context.Context, name *string) (*string, error)
}
