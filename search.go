package happywhale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seawatch/happywhale/internal/domain"
	"github.com/seawatch/happywhale/internal/domain/search/query"
	"github.com/seawatch/happywhale/internal/logger"
	searchuc "github.com/seawatch/happywhale/internal/usecase/search"
)

// EncounterOption configures an encounter search.
type EncounterOption interface {
	applyEncounter(*encounterConfig)
}

// IndividualOption configures an individual search.
type IndividualOption interface {
	applyIndividual(*individualConfig)
}

// SearchOption configures either kind of search.
type SearchOption interface {
	EncounterOption
	IndividualOption
}

type encounterConfig struct {
	species         *string
	showConnections bool
}

type individualConfig struct {
	showConnections bool
}

type speciesOption string

func (o speciesOption) applyEncounter(c *encounterConfig) {
	name := string(o)
	c.species = &name
}

type connectionsOption bool

func (o connectionsOption) applyEncounter(c *encounterConfig)   { c.showConnections = bool(o) }
func (o connectionsOption) applyIndividual(c *individualConfig) { c.showConnections = bool(o) }

// WithSpecies restricts an encounter search to one species by display name.
func WithSpecies(name string) EncounterOption {
	return speciesOption(name)
}

// WithShowConnections asks the service to include connected encounters.
// Default: false.
func WithShowConnections(show bool) SearchOption {
	return connectionsOption(show)
}

// Query is a built search document ready for submission.
// It marshals to the exact JSON body that Submit posts.
type Query struct {
	doc query.Document
}

// Kind returns "encounter" or "individual".
func (q *Query) Kind() string {
	return q.doc.Kind()
}

// MarshalJSON implements json.Marshaler.
func (q *Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(&q.doc)
}

// Result is the raw reply to a submitted search.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// BuildEncounterSearch validates the filters, resolves species and water
// names, and returns the encounter query. Nothing is sent.
func (c *Client) BuildEncounterSearch(
	ctx context.Context, d DateFilter, l LocationFilter, opts ...EncounterOption,
) (q *Query, err error) {
	start := time.Now()
	defer func() { c.obs.observe("build_encounter", start, err) }()

	if d == nil {
		return nil, fmt.Errorf("date filter required: %w", domain.ErrInvalidVariant)
	}
	if l == nil {
		return nil, fmt.Errorf("location filter required: %w", domain.ErrInvalidVariant)
	}

	df, err := d.dateFilter()
	if err != nil {
		return nil, err
	}
	lf, err := l.locationFilter()
	if err != nil {
		return nil, err
	}

	var cfg encounterConfig
	for _, o := range opts {
		o.applyEncounter(&cfg)
	}

	ctx = logger.WithFields(c.withLogger(ctx), zap.String("search", query.KindEncounter))
	doc, err := c.searchSvc.BuildEncounter(ctx, &searchuc.EncounterParams{
		Date:            df,
		Location:        lf,
		Species:         cfg.species,
		ShowConnections: cfg.showConnections,
	})
	if err != nil {
		return nil, err
	}
	return &Query{doc: doc}, nil
}

// BuildIndividualSearch returns an individual query for species.
// An empty species name is sent as null.
func (c *Client) BuildIndividualSearch(
	ctx context.Context, species string, opts ...IndividualOption,
) (q *Query, err error) {
	start := time.Now()
	defer func() { c.obs.observe("build_individual", start, err) }()

	var cfg individualConfig
	for _, o := range opts {
		o.applyIndividual(&cfg)
	}

	var name *string
	if species != "" {
		name = &species
	}

	ctx = logger.WithFields(c.withLogger(ctx), zap.String("search", query.KindIndividual))
	doc, err := c.searchSvc.BuildIndividual(ctx, name, cfg.showConnections)
	if err != nil {
		return nil, err
	}
	return &Query{doc: doc}, nil
}

// Submit posts a built query. A non-2xx reply returns a *StatusError.
func (c *Client) Submit(ctx context.Context, q *Query) (res *Result, err error) {
	start := time.Now()
	defer func() { c.obs.observe("submit", start, err) }()

	if q == nil {
		return nil, errors.New("happywhale: nil query")
	}

	resp, err := c.submitter.Submit(ctx, &q.doc)
	if err != nil {
		return nil, fmt.Errorf("submit %s search: %w", q.Kind(), err)
	}
	return &Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
		RequestID:  resp.RequestID,
	}, nil
}

// SearchEncounters builds and submits an encounter search.
func (c *Client) SearchEncounters(
	ctx context.Context, d DateFilter, l LocationFilter, opts ...EncounterOption,
) (*Result, error) {
	q, err := c.BuildEncounterSearch(ctx, d, l, opts...)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, q)
}

// SearchIndividuals builds and submits an individual search.
func (c *Client) SearchIndividuals(
	ctx context.Context, species string, opts ...IndividualOption,
) (*Result, error) {
	q, err := c.BuildIndividualSearch(ctx, species, opts...)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, q)
}
