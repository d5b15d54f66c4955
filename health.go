package happywhale

import (
	"context"

	healthuc "github.com/seawatch/happywhale/internal/usecase/health"
)

// HealthStatus represents the aggregated client health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "error"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}

// Health checks the lookup database.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(c.withLogger(ctx))
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
