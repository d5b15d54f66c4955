package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/seawatch/happywhale/internal/domain"
	"github.com/seawatch/happywhale/internal/domain/search/date"
	"github.com/seawatch/happywhale/internal/domain/search/location"
	"github.com/seawatch/happywhale/internal/domain/search/query"
)

// --- Mocks ---

type mockLookup struct {
	oceanIDFn   func(ctx context.Context, name string) (*int64, error)
	seaIDFn     func(ctx context.Context, name string, oceanID *int64) (*int64, error)
	speciesFn   func(ctx context.Context, name *string) (*string, error)
	oceanCalls  int
	seaCalls    int
	specieCalls int
}

func (m *mockLookup) OceanID(ctx context.Context, name string) (*int64, error) {
	m.oceanCalls++
	if m.oceanIDFn != nil {
		return m.oceanIDFn(ctx, name)
	}
	return nil, nil
}

func (m *mockLookup) SeaID(ctx context.Context, name string, oceanID *int64) (*int64, error) {
	m.seaCalls++
	if m.seaIDFn != nil {
		return m.seaIDFn(ctx, name, oceanID)
	}
	return nil, nil
}

func (m *mockLookup) SpeciesQueryName(ctx context.Context, name *string) (*string, error) {
	m.specieCalls++
	if m.speciesFn != nil {
		return m.speciesFn(ctx, name)
	}
	return nil, nil
}

// --- Helpers ---

func ptr[T any](v T) *T { return &v }

func mustJSON(t *testing.T, doc query.Document) string {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func assertJSON(t *testing.T, got query.Document, want string) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal([]byte(mustJSON(t, got)), &g); err != nil {
		t.Fatalf("unmarshal got: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("unmarshal want: %v", err)
	}
	gb, _ := json.Marshal(g)
	wb, _ := json.Marshal(w)
	if string(gb) != string(wb) {
		t.Errorf("document mismatch:\ngot:  %s\nwant: %s", gb, wb)
	}
}

func between(t *testing.T) date.Filter {
	t.Helper()
	f, err := date.NewBetween("1970-01-01", "1980-01-01")
	if err != nil {
		t.Fatalf("NewBetween: %v", err)
	}
	return f
}

// --- Tests ---

func TestBuildEncounter_WholeWorld(t *testing.T) {
	lookup := &mockLookup{}
	svc := New(lookup)

	doc, err := svc.BuildEncounter(context.Background(), &EncounterParams{
		Date:     between(t),
		Location: location.WholeWorld(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSON(t, doc, `{
		"encounter": {
			"datesearch": {"type":3,"startdate":"1970-01-01","enddate":"1980-01-01"},
			"locsearch": null,
			"species": null
		},
		"showConnections": false
	}`)
	if lookup.oceanCalls != 0 || lookup.seaCalls != 0 {
		t.Errorf("whole world must not touch ocean/sea lookups (ocean=%d sea=%d)", lookup.oceanCalls, lookup.seaCalls)
	}
}

func TestBuildEncounter_MapBounds(t *testing.T) {
	loc, err := location.NewMapBounds(1.0, 2.0, 3.0, 4.0)
	if err != nil {
		t.Fatalf("NewMapBounds: %v", err)
	}
	preset, _ := date.NewPreset(date.PresetPastYear)

	doc, err := New(&mockLookup{}).BuildEncounter(context.Background(), &EncounterParams{
		Date:     preset,
		Location: loc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSON(t, doc, `{
		"encounter": {
			"datesearch": {"type":4,"preset":1},
			"locsearch": {"type":"mapbounds","mapBounds":{"southWest":{"lat":1,"lng":2},"northEast":{"lat":3,"lng":4}}},
			"species": null
		},
		"showConnections": false
	}`)
}

func TestBuildEncounter_NamedLocation(t *testing.T) {
	loc, _ := location.NewNamed("Maui")
	on, _ := date.NewSingle(date.KindOn, "2022-02-02")

	doc, err := New(&mockLookup{}).BuildEncounter(context.Background(), &EncounterParams{
		Date:            on,
		Location:        loc,
		ShowConnections: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSON(t, doc, `{
		"encounter": {
			"datesearch": {"type":0,"startdate":"2022-02-02"},
			"locsearch": {"type":"location","location":"Maui"},
			"species": null
		},
		"showConnections": true
	}`)
}

func TestBuildEncounter_WaterGeoResolved(t *testing.T) {
	var seaOcean *int64
	lookup := &mockLookup{
		oceanIDFn: func(_ context.Context, name string) (*int64, error) {
			if name != "Atlantic" {
				t.Errorf("ocean name = %q, want Atlantic", name)
			}
			return ptr(int64(2)), nil
		},
		seaIDFn: func(_ context.Context, name string, oceanID *int64) (*int64, error) {
			seaOcean = oceanID
			return ptr(int64(202)), nil
		},
	}
	loc, _ := location.NewWaterGeo("Atlantic", "North Sea")

	doc, err := New(lookup).BuildEncounter(context.Background(), &EncounterParams{
		Date:     between(t),
		Location: loc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seaOcean == nil || *seaOcean != 2 {
		t.Errorf("sea lookup scoped to %v, want ocean 2", seaOcean)
	}
	ls := doc.Encounter.LocSearch
	if ls == nil || ls.Type != query.TypeWaterGeo {
		t.Fatalf("locsearch = %+v, want watergeo", ls)
	}
	if *ls.WaterGeo.OceanID != 2 || *ls.WaterGeo.SeaID != 202 {
		t.Errorf("watergeo = (%d, %d), want (2, 202)", *ls.WaterGeo.OceanID, *ls.WaterGeo.SeaID)
	}
}

func TestBuildEncounter_WaterGeoOceanMiss(t *testing.T) {
	lookup := &mockLookup{}
	loc, _ := location.NewWaterGeo("Atlantis", "Lost Sea")

	doc, err := New(lookup).BuildEncounter(context.Background(), &EncounterParams{
		Date:     between(t),
		Location: loc,
	})
	if err != nil {
		t.Fatalf("ocean miss must not fail: %v", err)
	}
	assertJSON(t, doc, `{
		"encounter": {
			"datesearch": {"type":3,"startdate":"1970-01-01","enddate":"1980-01-01"},
			"locsearch": {"type":"watergeo","watergeo":{"oceanid":null,"seaid":null}},
			"species": null
		},
		"showConnections": false
	}`)
	if lookup.seaCalls != 1 {
		t.Errorf("sea lookup calls = %d, want 1 (attempted with nil ocean id)", lookup.seaCalls)
	}
}

func TestBuildEncounter_WaterGeoWithoutSea(t *testing.T) {
	lookup := &mockLookup{
		oceanIDFn: func(context.Context, string) (*int64, error) { return ptr(int64(1)), nil },
	}
	loc, _ := location.NewWaterGeo("Pacific", "")

	doc, err := New(lookup).BuildEncounter(context.Background(), &EncounterParams{
		Date:     between(t),
		Location: loc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lookup.seaCalls != 0 {
		t.Errorf("sea lookup calls = %d, want 0", lookup.seaCalls)
	}
	if doc.Encounter.LocSearch.WaterGeo.SeaID != nil {
		t.Error("seaid must be null when no sea name is given")
	}
}

func TestBuildEncounter_Species(t *testing.T) {
	lookup := &mockLookup{
		speciesFn: func(_ context.Context, name *string) (*string, error) {
			if name != nil && *name == "Orca" {
				return ptr("killer_whale"), nil
			}
			return nil, nil
		},
	}
	svc := New(lookup)

	doc, err := svc.BuildEncounter(context.Background(), &EncounterParams{
		Date:     between(t),
		Location: location.WholeWorld(),
		Species:  ptr("Orca"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Encounter.Species == nil || *doc.Encounter.Species != "killer_whale" {
		t.Errorf("species = %v, want killer_whale", doc.Encounter.Species)
	}

	doc, err = svc.BuildEncounter(context.Background(), &EncounterParams{
		Date:     between(t),
		Location: location.WholeWorld(),
		Species:  ptr("Kraken"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Encounter.Species != nil {
		t.Errorf("species = %q, want null", *doc.Encounter.Species)
	}
}

func TestBuildEncounter_UnsetFilters(t *testing.T) {
	lookup := &mockLookup{}
	svc := New(lookup)

	_, err := svc.BuildEncounter(context.Background(), &EncounterParams{Location: location.WholeWorld()})
	if !errors.Is(err, domain.ErrInvalidVariant) {
		t.Errorf("unset date: err = %v, want ErrInvalidVariant", err)
	}

	_, err = svc.BuildEncounter(context.Background(), &EncounterParams{Date: between(t)})
	if !errors.Is(err, domain.ErrInvalidVariant) {
		t.Errorf("unset location: err = %v, want ErrInvalidVariant", err)
	}

	if lookup.oceanCalls+lookup.seaCalls+lookup.specieCalls != 0 {
		t.Error("validation failures must happen before any lookup")
	}
}

func TestBuildEncounter_LookupError(t *testing.T) {
	boom := errors.New("database is locked")
	loc, _ := location.NewWaterGeo("Pacific", "Coral Sea")

	tests := []struct {
		name   string
		lookup *mockLookup
	}{
		{"ocean", &mockLookup{oceanIDFn: func(context.Context, string) (*int64, error) { return nil, boom }}},
		{"sea", &mockLookup{seaIDFn: func(context.Context, string, *int64) (*int64, error) { return nil, boom }}},
		{"species", &mockLookup{speciesFn: func(context.Context, *string) (*string, error) { return nil, boom }}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.lookup).BuildEncounter(context.Background(), &EncounterParams{
				Date:     between(t),
				Location: loc,
				Species:  ptr("orca"),
			})
			if !errors.Is(err, boom) {
				t.Errorf("err = %v, want wrapped %v", err, boom)
			}
		})
	}
}

func TestBuildIndividual(t *testing.T) {
	lookup := &mockLookup{
		speciesFn: func(context.Context, *string) (*string, error) { return ptr("killer_whale"), nil },
	}

	doc, err := New(lookup).BuildIndividual(context.Background(), ptr("Orca"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSON(t, doc, `{"individual":{"species":"killer_whale"},"showConnections":false}`)
}

func TestBuildIndividual_NoSpecies(t *testing.T) {
	doc, err := New(&mockLookup{}).BuildIndividual(context.Background(), nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSON(t, doc, `{"individual":{"species":null},"showConnections":true}`)
}
