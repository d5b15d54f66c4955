package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/seawatch/happywhale/internal/domain/reference"
)

type mockRepo struct {
	oceanIDFn      func(ctx context.Context, name string) (*int64, error)
	oceansFn       func(ctx context.Context) ([]reference.Ocean, error)
	seasFn         func(ctx context.Context, oceanID *int64) ([]reference.Sea, error)
	speciesNamesFn func(ctx context.Context) ([]string, error)
}

func (m *mockRepo) OceanID(ctx context.Context, name string) (*int64, error) {
	return m.oceanIDFn(ctx, name)
}

func (m *mockRepo) Oceans(ctx context.Context) ([]reference.Ocean, error) {
	return m.oceansFn(ctx)
}

func (m *mockRepo) Seas(ctx context.Context, oceanID *int64) ([]reference.Sea, error) {
	return m.seasFn(ctx, oceanID)
}

func (m *mockRepo) SpeciesNames(ctx context.Context) ([]string, error) {
	return m.speciesNamesFn(ctx)
}

func TestOceans(t *testing.T) {
	svc := New(&mockRepo{
		oceansFn: func(context.Context) ([]reference.Ocean, error) {
			return []reference.Ocean{{ID: 1, Name: "pacific"}}, nil
		},
	})
	oceans, err := svc.Oceans(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(oceans) != 1 || oceans[0].Name != "pacific" {
		t.Errorf("oceans = %+v", oceans)
	}
}

func TestSeasByOceanName(t *testing.T) {
	var gotID *int64
	svc := New(&mockRepo{
		oceanIDFn: func(_ context.Context, name string) (*int64, error) {
			if name == "Pacific" {
				id := int64(1)
				return &id, nil
			}
			return nil, nil
		},
		seasFn: func(_ context.Context, oceanID *int64) ([]reference.Sea, error) {
			gotID = oceanID
			if oceanID == nil {
				return []reference.Sea{}, nil
			}
			return []reference.Sea{{ID: 102, Name: "bering sea", OceanID: 1}}, nil
		},
	})

	seas, err := svc.SeasByOceanName(context.Background(), "Pacific")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID == nil || *gotID != 1 {
		t.Errorf("seas listed for ocean %v, want 1", gotID)
	}
	if len(seas) != 1 {
		t.Errorf("len(seas) = %d, want 1", len(seas))
	}

	seas, err = svc.SeasByOceanName(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seas) != 0 {
		t.Errorf("unknown ocean: len(seas) = %d, want 0", len(seas))
	}
}

func TestSeasByOceanName_ResolveError(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&mockRepo{
		oceanIDFn: func(context.Context, string) (*int64, error) { return nil, boom },
	})
	if _, err := svc.SeasByOceanName(context.Background(), "Pacific"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestSpeciesNames_Error(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&mockRepo{
		speciesNamesFn: func(context.Context) ([]string, error) { return nil, boom },
	})
	_, err := svc.SpeciesNames(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
