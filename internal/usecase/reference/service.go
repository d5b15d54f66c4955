package reference

import (
	"context"
	"fmt"

	"github.com/seawatch/happywhale/internal/domain/reference"
)

// Service lists the names callers can filter by.
type Service struct {
	repo Repository
}

// New creates a reference service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Oceans lists every ocean.
func (s *Service) Oceans(ctx context.Context) ([]reference.Ocean, error) {
	oceans, err := s.repo.Oceans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list oceans: %w", err)
	}
	return oceans, nil
}

// SeasByOceanName resolves the ocean first; an unknown ocean yields no seas.
func (s *Service) SeasByOceanName(ctx context.Context, oceanName string) ([]reference.Sea, error) {
	oceanID, err := s.repo.OceanID(ctx, oceanName)
	if err != nil {
		return nil, fmt.Errorf("resolve ocean: %w", err)
	}
	return s.SeasByOceanID(ctx, oceanID)
}

// SeasByOceanID lists the seas of one ocean.
func (s *Service) SeasByOceanID(ctx context.Context, oceanID *int64) ([]reference.Sea, error) {
	seas, err := s.repo.Seas(ctx, oceanID)
	if err != nil {
		return nil, fmt.Errorf("list seas: %w", err)
	}
	return seas, nil
}

// SpeciesNames lists every species display name.
func (s *Service) SpeciesNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.SpeciesNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	return names, nil
}
