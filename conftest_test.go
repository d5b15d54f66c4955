package happywhale

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/seawatch/happywhale/internal/repository/lookup"
	"github.com/seawatch/happywhale/internal/transport/critterspot/critterspottest"
)

// newFixtureDB writes the default lookup fixture to a temp file.
func newFixtureDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "happywhale.db")
	if err := lookup.WriteFixture(path, lookup.DefaultFixture()); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// newIntegrationClient wires a real client against a fixture database and a fake service.
func newIntegrationClient(t *testing.T, opts ...Option) (*Client, *critterspottest.Server) {
	t.Helper()
	srv := critterspottest.NewServer(t)
	base := []Option{
		WithDatabase(newFixtureDB(t)),
		WithEndpoint(srv.Endpoint()),
		WithHTTPClient(srv.Client()),
	}
	c, err := New(context.Background(), append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, srv
}
