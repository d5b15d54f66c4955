package lookup

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/seawatch/happywhale/internal/db"
	"github.com/seawatch/happywhale/internal/domain/reference"
)

// store is the consumer interface for lookups (ISP).
type store interface {
	WithConn(ctx context.Context, fn func(conn *gorm.DB) error) error
}

// Repo resolves names to identifiers. Implements usecase/search.Lookup
// and usecase/reference.Repository.
type Repo struct {
	store store
}

// New creates a lookup repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// OceanID resolves an ocean name case-insensitively. Returns nil on miss.
func (r *Repo) OceanID(ctx context.Context, name string) (*int64, error) {
	var id *int64
	err := r.store.WithConn(ctx, func(conn *gorm.DB) error {
		var row oceanRow
		err := conn.Select("id").Where("name = ?", strings.ToLower(name)).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return &db.Error{Op: db.OpSelectOceans, Err: err}
		}
		id = &row.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

// SeaID resolves a sea name within the given ocean. Returns nil on miss or when oceanID is nil.
func (r *Repo) SeaID(ctx context.Context, name string, oceanID *int64) (*int64, error) {
	if oceanID == nil {
		return nil, nil
	}
	var id *int64
	err := r.store.WithConn(ctx, func(conn *gorm.DB) error {
		var row seaRow
		err := conn.Select("seaid").
			Where("name = ? AND oceanid = ?", strings.ToLower(name), *oceanID).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return &db.Error{Op: db.OpSelectSeas, Err: err}
		}
		id = &row.SeaID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

// SpeciesQueryName resolves a species display name to its canonical query name.
// A nil name passes through as nil without touching the database.
func (r *Repo) SpeciesQueryName(ctx context.Context, name *string) (*string, error) {
	if name == nil {
		return nil, nil
	}
	var qname *string
	err := r.store.WithConn(ctx, func(conn *gorm.DB) error {
		var row speciesRow
		err := conn.Select("qname").Where("name = ?", strings.ToLower(*name)).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return &db.Error{Op: db.OpSelectSpecies, Err: err}
		}
		qname = &row.QName
		return nil
	})
	if err != nil {
		return nil, err
	}
	return qname, nil
}

// Oceans lists every ocean.
func (r *Repo) Oceans(ctx context.Context) ([]reference.Ocean, error) {
	var rows []oceanRow
	err := r.store.WithConn(ctx, func(conn *gorm.DB) error {
		if err := conn.Order("id").Find(&rows).Error; err != nil {
			return &db.Error{Op: db.OpSelectOceans, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]reference.Ocean, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Seas lists the seas of one ocean. A nil oceanID yields an empty list.
func (r *Repo) Seas(ctx context.Context, oceanID *int64) ([]reference.Sea, error) {
	if oceanID == nil {
		return []reference.Sea{}, nil
	}
	var rows []seaRow
	err := r.store.WithConn(ctx, func(conn *gorm.DB) error {
		if err := conn.Where("oceanid = ?", *oceanID).Order("seaid").Find(&rows).Error; err != nil {
			return &db.Error{Op: db.OpSelectSeas, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]reference.Sea, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// SpeciesNames lists every species display name.
func (r *Repo) SpeciesNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.store.WithConn(ctx, func(conn *gorm.DB) error {
		if err := conn.Model(&speciesRow{}).Order("name").Pluck("name", &names).Error; err != nil {
			return &db.Error{Op: db.OpSelectSpecies, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
