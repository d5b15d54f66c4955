package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seawatch/happywhale/internal/domain"
	"github.com/seawatch/happywhale/internal/domain/search/date"
	"github.com/seawatch/happywhale/internal/domain/search/location"
	"github.com/seawatch/happywhale/internal/domain/search/query"
	"github.com/seawatch/happywhale/internal/logger"
)

// EncounterParams describes an encounter search before name resolution.
type EncounterParams struct {
	Date            date.Filter
	Location        location.Filter
	Species         *string
	ShowConnections bool
}

// Service builds search documents, resolving names through Lookup.
type Service struct {
	lookup Lookup
}

// New creates a search service.
func New(lookup Lookup) *Service {
	return &Service{lookup: lookup}
}

// BuildEncounter assembles an encounter search document.
// Filters are validated before any lookup; lookup misses become nulls.
func (s *Service) BuildEncounter(ctx context.Context, p *EncounterParams) (query.Document, error) {
	if !p.Date.Valid() {
		return query.Document{}, fmt.Errorf("datesearch not set: %w", domain.ErrInvalidVariant)
	}
	if !p.Location.Valid() {
		return query.Document{}, fmt.Errorf("locsearch not set: %w", domain.ErrInvalidVariant)
	}

	ds := query.NewDateSearch(&p.Date)

	ls, err := s.locSearch(ctx, &p.Location)
	if err != nil {
		return query.Document{}, err
	}

	species, err := s.species(ctx, p.Species)
	if err != nil {
		return query.Document{}, err
	}

	return query.NewEncounter(ds, ls, species, p.ShowConnections), nil
}

// BuildIndividual assembles an individual search document.
func (s *Service) BuildIndividual(
	ctx context.Context, speciesName *string, showConnections bool,
) (query.Document, error) {
	species, err := s.species(ctx, speciesName)
	if err != nil {
		return query.Document{}, err
	}
	return query.NewIndividual(species, showConnections), nil
}

// locSearch converts a location filter to its wire form. WholeWorld yields nil.
func (s *Service) locSearch(ctx context.Context, f *location.Filter) (*query.LocSearch, error) {
	switch f.Kind() {
	case location.KindWholeWorld:
		return nil, nil
	case location.KindMapBounds:
		return query.NewMapBoundsSearch(f.Bounds()), nil
	case location.KindLocation:
		return query.NewLocationSearch(f.Location()), nil
	case location.KindWaterGeo:
		return s.waterGeo(ctx, f)
	default:
		return nil, fmt.Errorf("locsearch %s: %w", f.Kind(), domain.ErrInvalidVariant)
	}
}

// waterGeo resolves the ocean first and the sea, if given, within that ocean.
func (s *Service) waterGeo(ctx context.Context, f *location.Filter) (*query.LocSearch, error) {
	log := logger.FromContext(ctx)

	oceanID, err := s.lookup.OceanID(ctx, f.OceanName())
	if err != nil {
		return nil, fmt.Errorf("resolve ocean: %w", err)
	}
	if oceanID == nil {
		log.Debug("ocean not found, sending null oceanid", zap.String("ocean", f.OceanName()))
	}

	var seaID *int64
	if f.HasSea() {
		seaID, err = s.lookup.SeaID(ctx, f.SeaName(), oceanID)
		if err != nil {
			return nil, fmt.Errorf("resolve sea: %w", err)
		}
		if seaID == nil {
			log.Debug("sea not found, sending null seaid",
				zap.String("ocean", f.OceanName()),
				zap.String("sea", f.SeaName()),
			)
		}
	}

	return query.NewWaterGeoSearch(oceanID, seaID), nil
}

func (s *Service) species(ctx context.Context, name *string) (*string, error) {
	qname, err := s.lookup.SpeciesQueryName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve species: %w", err)
	}
	if name != nil && qname == nil {
		logger.FromContext(ctx).Debug("species not found, sending null species", zap.String("species", *name))
	}
	return qname, nil
}
