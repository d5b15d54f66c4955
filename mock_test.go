package happywhale

import (
	"context"

	"github.com/seawatch/happywhale/internal/domain/reference"
	"github.com/seawatch/happywhale/internal/domain/search/query"
	"github.com/seawatch/happywhale/internal/transport/critterspot"
	healthuc "github.com/seawatch/happywhale/internal/usecase/health"
	searchuc "github.com/seawatch/happywhale/internal/usecase/search"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	encounterFn  func(ctx context.Context, p *searchuc.EncounterParams) (query.Document, error)
	individualFn func(ctx context.Context, species *string, show bool) (query.Document, error)
	calls        int
}

func (m *mockSearchUC) BuildEncounter(ctx context.Context, p *searchuc.EncounterParams) (query.Document, error) {
	m.calls++
	return m.encounterFn(ctx, p)
}

func (m *mockSearchUC) BuildIndividual(ctx context.Context, species *string, show bool) (query.Document, error) {
	m.calls++
	return m.individualFn(ctx, species, show)
}

// --- referenceUseCase mock ---

type mockReferenceUC struct {
	oceansFn      func(ctx context.Context) ([]reference.Ocean, error)
	seasByNameFn  func(ctx context.Context, oceanName string) ([]reference.Sea, error)
	seasByIDFn    func(ctx context.Context, oceanID *int64) ([]reference.Sea, error)
	speciesNameFn func(ctx context.Context) ([]string, error)
}

func (m *mockReferenceUC) Oceans(ctx context.Context) ([]reference.Ocean, error) {
	return m.oceansFn(ctx)
}

func (m *mockReferenceUC) SeasByOceanName(ctx context.Context, oceanName string) ([]reference.Sea, error) {
	return m.seasByNameFn(ctx, oceanName)
}

func (m *mockReferenceUC) SeasByOceanID(ctx context.Context, oceanID *int64) ([]reference.Sea, error) {
	return m.seasByIDFn(ctx, oceanID)
}

func (m *mockReferenceUC) SpeciesNames(ctx context.Context) ([]string, error) {
	return m.speciesNameFn(ctx)
}

// --- submitter mock ---

type mockSubmitter struct {
	submitFn func(ctx context.Context, doc *query.Document) (*critterspot.Response, error)
	calls    int
}

func (m *mockSubmitter) Submit(ctx context.Context, doc *query.Document) (*critterspot.Response, error) {
	m.calls++
	return m.submitFn(ctx, doc)
}

func (m *mockSubmitter) Endpoint() string { return "https://critterspot.test/search" }

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

// --- helpers ---

func testClient(
	searchSvc searchUseCase,
	refSvc referenceUseCase,
	sub submitter,
) *Client {
	return &Client{
		searchSvc: searchSvc,
		refSvc:    refSvc,
		submitter: sub,
	}
}
