package db

import (
	"context"

	"gorm.io/gorm"
)

// Store is the lookup database facade.
type Store interface {
	Pinger
	ConnRunner
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnRunner runs fn on a connection that is opened for the call and
// released before WithConn returns, including when fn fails.
type ConnRunner interface {
	WithConn(ctx context.Context, fn func(conn *gorm.DB) error) error
}
