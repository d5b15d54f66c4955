package critterspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seawatch/happywhale/internal/domain"
	"github.com/seawatch/happywhale/internal/domain/search/query"
	"github.com/seawatch/happywhale/internal/metrics"
)

// DefaultEndpoint is the search endpoint of the public critterspot service.
// Encounter and individual searches share it.
const DefaultEndpoint = "https://critterspot.happywhale.com/v1/cs/admin/encounter/search"

// RequestIDHeader carries the per-submission request id.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps the body excerpt kept in StatusError messages.
const maxErrorBody = 512

// Config holds the submitter settings.
type Config struct {
	Endpoint   string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *zap.Logger
}

// Submitter posts search documents to the critterspot service.
type Submitter struct {
	endpoint  string
	client    *http.Client
	userAgent string
	logger    *zap.Logger
}

// Response is the raw reply of the search service.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// StatusError reports a non-2xx reply. It unwraps to domain.ErrUnexpectedStatus.
type StatusError struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if len(body) == 0 {
		return fmt.Sprintf("search service returned %d: %s", e.StatusCode, domain.ErrUnexpectedStatus)
	}
	return fmt.Sprintf("search service returned %d: %s: %s", e.StatusCode, bytes.TrimSpace(body), domain.ErrUnexpectedStatus)
}

func (e *StatusError) Unwrap() error { return domain.ErrUnexpectedStatus }

// New creates a submitter. Empty fields fall back to DefaultEndpoint,
// http.DefaultClient and a no-op logger.
func New(cfg *Config) *Submitter {
	s := &Submitter{
		endpoint:  cfg.Endpoint,
		client:    cfg.HTTPClient,
		userAgent: cfg.UserAgent,
		logger:    cfg.Logger,
	}
	if s.endpoint == "" {
		s.endpoint = DefaultEndpoint
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Endpoint returns the URL documents are posted to.
func (s *Submitter) Endpoint() string { return s.endpoint }

// Submit sends one search document. There are no retries; timeouts come from
// ctx or the configured http.Client.
func (s *Submitter) Submit(ctx context.Context, doc *query.Document) (*Response, error) {
	kind := doc.Kind()

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s search: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	log := s.logger.With(
		zap.String("kind", kind),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RemoteRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		metrics.RemoteRequestsTotal.WithLabelValues(kind, "error").Inc()
		metrics.RemoteErrorsTotal.WithLabelValues(kind, "transport").Inc()
		log.Warn("search submission failed", zap.Error(err))
		return nil, fmt.Errorf("post %s search: %w", kind, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	body, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	metrics.RemoteRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(kind, "error").Inc()
		metrics.RemoteErrorsTotal.WithLabelValues(kind, "transport").Inc()
		return nil, fmt.Errorf("read %s search response: %w", kind, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RemoteRequestsTotal.WithLabelValues(kind, "error").Inc()
		metrics.RemoteErrorsTotal.WithLabelValues(kind, "status").Inc()
		log.Warn("search service rejected submission",
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body, RequestID: requestID}
	}

	metrics.RemoteRequestsTotal.WithLabelValues(kind, "success").Inc()
	log.Debug("search submitted",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", duration),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		RequestID:  requestID,
	}, nil
}
