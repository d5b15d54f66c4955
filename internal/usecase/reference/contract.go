package reference

import (
	"context"

	"github.com/seawatch/happywhale/internal/domain/reference"
)

// Repository reads reference data from the lookup database.
type Repository interface {
	OceanID(ctx context.Context, name string) (*int64, error)
	Oceans(ctx context.Context) ([]reference.Ocean, error)
	Seas(ctx context.Context, oceanID *int64) ([]reference.Sea, error)
	SpeciesNames(ctx context.Context) ([]string, error)
}
