package sqlite

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/seawatch/happywhale/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// DefaultSlowThreshold is the query duration above which gorm logs a warning.
const DefaultSlowThreshold = 200 * time.Millisecond

// Config holds the lookup database settings.
type Config struct {
	Path          string
	Logger        *zap.Logger
	SlowThreshold time.Duration
}

// Store opens the SQLite lookup database read-only, one connection per call.
type Store struct {
	path   string
	logger gormlogger.Interface
}

// NewStore checks that the database file exists and prepares the store.
// No connection is held between calls.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("path is required")
	}
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", cfg.Path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, db.ErrDatabaseNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	slow := cfg.SlowThreshold
	if slow <= 0 {
		slow = DefaultSlowThreshold
	}

	return &Store{
		path:   path,
		logger: newGormLogger(cfg.Logger, slow),
	}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// WithConn opens a connection, runs fn and closes the connection before returning.
func (s *Store) WithConn(ctx context.Context, fn func(conn *gorm.DB) error) (err error) {
	// gorm.Open mutates its config, so each connection gets its own.
	conn, err := gorm.Open(sqlite.Open(readOnlyDSN(s.path)), &gorm.Config{
		Logger:                 s.logger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return &db.Error{Op: db.OpOpen, Err: err}
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return &db.Error{Op: db.OpOpen, Err: err}
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil && err == nil {
			err = &db.Error{Op: db.OpClose, Err: cerr}
		}
	}()

	return fn(conn.WithContext(ctx))
}

// Ping checks that the database can be opened and answers.
func (s *Store) Ping(ctx context.Context) error {
	err := s.WithConn(ctx, func(conn *gorm.DB) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return &db.Error{Op: db.OpPing, Err: err}
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return &db.Error{Op: db.OpPing, Err: err}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// readOnlyDSN builds a SQLite URI for an absolute path. Characters such as
// '#' and '?' are percent-encoded so they stay part of the filename.
func readOnlyDSN(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/dir/lookup.db
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}

// newGormLogger bridges gorm's logger onto zap. A nil logger discards gorm output.
func newGormLogger(l *zap.Logger, slow time.Duration) gormlogger.Interface {
	if l == nil {
		return gormlogger.Discard
	}
	return gormlogger.New(
		zap.NewStdLog(l.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             slow,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
