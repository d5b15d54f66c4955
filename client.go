package happywhale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seawatch/happywhale/internal/db"
	"github.com/seawatch/happywhale/internal/db/sqlite"
	"github.com/seawatch/happywhale/internal/domain/reference"
	"github.com/seawatch/happywhale/internal/domain/search/query"
	"github.com/seawatch/happywhale/internal/logger"
	"github.com/seawatch/happywhale/internal/repository/lookup"
	"github.com/seawatch/happywhale/internal/transport/critterspot"
	healthuc "github.com/seawatch/happywhale/internal/usecase/health"
	referenceuc "github.com/seawatch/happywhale/internal/usecase/reference"
	searchuc "github.com/seawatch/happywhale/internal/usecase/search"
	"github.com/seawatch/happywhale/internal/version"
)

// DefaultEndpoint is the critterspot search URL used unless WithEndpoint is given.
const DefaultEndpoint = critterspot.DefaultEndpoint

// Internal interfaces for substitution in tests.
type searchUseCase interface {
	BuildEncounter(ctx context.Context, p *searchuc.EncounterParams) (query.Document, error)
	BuildIndividual(ctx context.Context, speciesName *string, showConnections bool) (query.Document, error)
}

type referenceUseCase interface {
	Oceans(ctx context.Context) ([]reference.Ocean, error)
	SeasByOceanName(ctx context.Context, oceanName string) ([]reference.Sea, error)
	SeasByOceanID(ctx context.Context, oceanID *int64) ([]reference.Sea, error)
	SpeciesNames(ctx context.Context) ([]string, error)
}

type submitter interface {
	Submit(ctx context.Context, doc *query.Document) (*critterspot.Response, error)
	Endpoint() string
}

// Client is the happywhale SDK entry point. It is safe for concurrent use.
type Client struct {
	store     db.Pinger
	searchSvc searchUseCase
	refSvc    referenceUseCase
	healthSvc healthUseCase
	submitter submitter
	obs       *observer
	log       *zap.Logger
}

// New creates a Client over the lookup database given by WithDatabase.
// The provided context is used for the initial readability check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		endpoint:  DefaultEndpoint,
		userAgent: version.UserAgent(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.dbPath == "" {
		return nil, errors.New("happywhale: lookup database path required (use WithDatabase)")
	}

	log := cfg.logger
	if log == nil {
		log = zap.NewNop()
	}

	store, err := sqlite.NewStore(sqlite.Config{
		Path:          cfg.dbPath,
		Logger:        log,
		SlowThreshold: cfg.slowThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("happywhale: open lookup database: %w", err)
	}
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("happywhale: lookup database not readable: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	sub := critterspot.New(&critterspot.Config{
		Endpoint:   cfg.endpoint,
		HTTPClient: cfg.httpClient,
		UserAgent:  cfg.userAgent,
		Logger:     log.Named("critterspot"),
	})

	return wireClient(store, sub, obs, log), nil
}

func wireClient(store db.Store, sub submitter, obs *observer, log *zap.Logger) *Client {
	repo := lookup.New(store)
	return &Client{
		store:     store,
		searchSvc: searchuc.New(repo),
		refSvc:    referenceuc.New(repo),
		healthSvc: healthuc.New(store),
		submitter: sub,
		obs:       obs,
		log:       log,
	}
}

// withLogger lets internal layers log through the client logger unless the
// caller's context already carries one.
func (c *Client) withLogger(ctx context.Context) context.Context {
	return logger.WithDefault(ctx, c.log)
}

// Endpoint returns the URL searches are submitted to.
func (c *Client) Endpoint() string {
	return c.submitter.Endpoint()
}

// Ping checks that the lookup database can be opened and queried.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("lookup database: %w", err)
	}
	return nil
}
