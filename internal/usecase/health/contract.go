package health

import "context"

// DBPinger checks lookup database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
