package lookup

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/seawatch/happywhale/internal/domain/reference"
)

// Fixture is reference data for building a lookup database in tests and local setups.
type Fixture struct {
	Oceans  []reference.Ocean
	Seas    []reference.Sea
	Species []reference.Species
}

// DefaultFixture returns a small, realistic data set.
func DefaultFixture() Fixture {
	return Fixture{
		Oceans: []reference.Ocean{
			{ID: 1, Name: "pacific"},
			{ID: 2, Name: "atlantic"},
			{ID: 3, Name: "indian"},
			{ID: 4, Name: "arctic"},
			{ID: 5, Name: "southern"},
		},
		Seas: []reference.Sea{
			{ID: 101, Name: "gulf of california", OceanID: 1},
			{ID: 102, Name: "bering sea", OceanID: 1},
			{ID: 103, Name: "coral sea", OceanID: 1},
			{ID: 201, Name: "caribbean sea", OceanID: 2},
			{ID: 202, Name: "north sea", OceanID: 2},
			{ID: 301, Name: "arabian sea", OceanID: 3},
		},
		Species: []reference.Species{
			{Name: "orca", QueryName: "killer_whale"},
			{Name: "humpback whale", QueryName: "humpback_whale"},
			{Name: "blue whale", QueryName: "blue_whale"},
			{Name: "sperm whale", QueryName: "sperm_whale"},
			{Name: "gray whale", QueryName: "gray_whale"},
		},
	}
}

// WriteFixture creates the oceans, seas and species tables at path and fills them.
// Names are stored lower-cased, matching how lookups query them.
func WriteFixture(path string, f Fixture) (err error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := conn.AutoMigrate(&oceanRow{}, &seaRow{}, &speciesRow{}); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		for _, o := range f.Oceans {
			if err := tx.Create(&oceanRow{ID: o.ID, Name: strings.ToLower(o.Name)}).Error; err != nil {
				return fmt.Errorf("insert ocean %q: %w", o.Name, err)
			}
		}
		for _, s := range f.Seas {
			row := seaRow{SeaID: s.ID, Name: strings.ToLower(s.Name), OceanID: s.OceanID}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert sea %q: %w", s.Name, err)
			}
		}
		for _, sp := range f.Species {
			row := speciesRow{Name: strings.ToLower(sp.Name), QName: sp.QueryName}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert species %q: %w", sp.Name, err)
			}
		}
		return nil
	})
}
