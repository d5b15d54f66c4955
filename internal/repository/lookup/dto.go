package lookup

import "github.com/seawatch/happywhale/internal/domain/reference"

// oceanRow maps oceans(id, name).
type oceanRow struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (oceanRow) TableName() string { return "oceans" }

// seaRow maps seas(seaid, name, oceanid).
type seaRow struct {
	SeaID   int64  `gorm:"column:seaid;primaryKey"`
	Name    string `gorm:"column:name"`
	OceanID int64  `gorm:"column:oceanid;index"`
}

func (seaRow) TableName() string { return "seas" }

// speciesRow maps species(name, qname).
type speciesRow struct {
	Name  string `gorm:"column:name;primaryKey"`
	QName string `gorm:"column:qname"`
}

func (speciesRow) TableName() string { return "species" }

func (r oceanRow) toDomain() reference.Ocean {
	return reference.Ocean{ID: r.ID, Name: r.Name}
}

func (r seaRow) toDomain() reference.Sea {
	return reference.Sea{ID: r.SeaID, Name: r.Name, OceanID: r.OceanID}
}
