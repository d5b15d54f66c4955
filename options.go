package happywhale

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	dbPath        string
	slowThreshold time.Duration

	endpoint   string
	httpClient *http.Client
	userAgent  string

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithDatabase sets the path of the SQLite lookup database. Required.
func WithDatabase(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.dbPath = path
	})
}

// WithSlowQueryThreshold sets the duration above which lookups are logged as slow.
// Default: 200ms.
func WithSlowQueryThreshold(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.slowThreshold = d
	})
}

// WithEndpoint overrides the critterspot search URL.
func WithEndpoint(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.endpoint = url
	})
}

// WithHTTPClient sets the HTTP client used for submissions.
// Timeouts are taken from this client; the default has none.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithUserAgent overrides the User-Agent header sent with submissions.
func WithUserAgent(ua string) Option {
	return optionFunc(func(c *clientConfig) {
		c.userAgent = ua
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// and remote submission metrics on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
