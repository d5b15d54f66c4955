// Package query holds the JSON document posted to the critterspot search endpoint.
package query

import (
	"github.com/seawatch/happywhale/internal/domain/geo"
	"github.com/seawatch/happywhale/internal/domain/search/date"
)

// Locsearch type tags.
const (
	TypeMapBounds = "mapbounds"
	TypeLocation  = "location"
	TypeWaterGeo  = "watergeo"
)

// Search kinds, as reported by Document.Kind.
const (
	KindEncounter  = "encounter"
	KindIndividual = "individual"
)

// Document is the request body. Exactly one of Encounter and Individual is set.
type Document struct {
	Encounter       *Encounter  `json:"encounter,omitempty"`
	Individual      *Individual `json:"individual,omitempty"`
	ShowConnections bool        `json:"showConnections"`
}

// Encounter is an encounter search. LocSearch and Species serialize as null when unset.
type Encounter struct {
	DateSearch DateSearch `json:"datesearch"`
	LocSearch  *LocSearch `json:"locsearch"`
	Species    *string    `json:"species"`
}

// Individual is an individual search.
type Individual struct {
	Species *string `json:"species"`
}

// DateSearch is the wire form of a date filter.
type DateSearch struct {
	Type      int    `json:"type"`
	StartDate string `json:"startdate,omitempty"`
	EndDate   string `json:"enddate,omitempty"`
	Preset    *int   `json:"preset,omitempty"`
}

// LocSearch is the wire form of a location filter.
type LocSearch struct {
	Type      string     `json:"type"`
	MapBounds *MapBounds `json:"mapBounds,omitempty"`
	Location  string     `json:"location,omitempty"`
	WaterGeo  *WaterGeo  `json:"watergeo,omitempty"`
}

// MapBounds is a viewport.
type MapBounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

// LatLng is a point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// WaterGeo carries resolved ocean/sea ids; a miss stays null.
type WaterGeo struct {
	OceanID *int64 `json:"oceanid"`
	SeaID   *int64 `json:"seaid"`
}

// NewDateSearch converts a validated date filter to its wire form.
func NewDateSearch(f *date.Filter) DateSearch {
	ds := DateSearch{Type: int(f.Kind())}
	switch f.Kind() {
	case date.KindOn, date.KindBefore, date.KindAfter:
		ds.StartDate = f.StartDate()
	case date.KindBetween:
		ds.StartDate = f.StartDate()
		ds.EndDate = f.EndDate()
	case date.KindPreset:
		code := f.Preset().Code()
		ds.Preset = &code
	}
	return ds
}

// NewMapBoundsSearch builds a mapbounds locsearch.
func NewMapBoundsSearch(b geo.Bounds) *LocSearch {
	return &LocSearch{
		Type: TypeMapBounds,
		MapBounds: &MapBounds{
			SouthWest: LatLng{Lat: b.SouthWest.Lat, Lng: b.SouthWest.Lng},
			NorthEast: LatLng{Lat: b.NorthEast.Lat, Lng: b.NorthEast.Lng},
		},
	}
}

// NewLocationSearch builds a free-text locsearch.
func NewLocationSearch(location string) *LocSearch {
	return &LocSearch{Type: TypeLocation, Location: location}
}

// NewWaterGeoSearch builds a watergeo locsearch from already resolved ids.
func NewWaterGeoSearch(oceanID, seaID *int64) *LocSearch {
	return &LocSearch{
		Type:     TypeWaterGeo,
		WaterGeo: &WaterGeo{OceanID: oceanID, SeaID: seaID},
	}
}

// NewEncounter assembles an encounter search document.
func NewEncounter(ds DateSearch, ls *LocSearch, species *string, showConnections bool) Document {
	return Document{
		Encounter: &Encounter{
			DateSearch: ds,
			LocSearch:  ls,
			Species:    species,
		},
		ShowConnections: showConnections,
	}
}

// NewIndividual assembles an individual search document.
func NewIndividual(species *string, showConnections bool) Document {
	return Document{
		Individual:      &Individual{Species: species},
		ShowConnections: showConnections,
	}
}

// Kind names the search kind for logs and metrics.
func (d *Document) Kind() string {
	if d.Individual != nil {
		return KindIndividual
	}
	return KindEncounter
}
