// Package location models the locsearch part of an encounter query.
package location

import (
	"fmt"

	"github.com/seawatch/happywhale/internal/domain"
	"github.com/seawatch/happywhale/internal/domain/geo"
)

const filterName = "locsearch"

// Kind is the locsearch variant.
type Kind int

// Locsearch variants.
const (
	KindWholeWorld Kind = iota
	KindMapBounds
	KindLocation
	KindWaterGeo
)

// IsValid checks if the kind is one of the supported variants.
func (k Kind) IsValid() bool {
	return k >= KindWholeWorld && k <= KindWaterGeo
}

func (k Kind) String() string {
	switch k {
	case KindWholeWorld:
		return "wholeworld"
	case KindMapBounds:
		return "mapbounds"
	case KindLocation:
		return "location"
	case KindWaterGeo:
		return "watergeo"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Filter is a validated locsearch. Names in a WaterGeo filter are still unresolved.
type Filter struct {
	kind      Kind
	bounds    geo.Bounds
	location  string
	oceanName string
	seaName   string
	valid     bool
}

// WholeWorld returns the unconstrained filter.
func WholeWorld() Filter {
	return Filter{kind: KindWholeWorld, valid: true}
}

// NewMapBounds builds a viewport filter from min/max latitude and longitude.
func NewMapBounds(minLat, minLng, maxLat, maxLng float64) (Filter, error) {
	b, err := geo.NewBounds(minLat, minLng, maxLat, maxLng)
	if err != nil {
		return Filter{}, fmt.Errorf("%s mapBounds: %w", filterName, err)
	}
	return Filter{kind: KindMapBounds, bounds: b, valid: true}, nil
}

// NewNamed builds a free-text location filter.
func NewNamed(location string) (Filter, error) {
	if location == "" {
		return Filter{}, domain.NewMissingParameter(filterName, "location")
	}
	return Filter{kind: KindLocation, location: location, valid: true}, nil
}

// NewWaterGeo builds an ocean/sea filter. seaName may be empty.
func NewWaterGeo(oceanName, seaName string) (Filter, error) {
	if oceanName == "" {
		return Filter{}, domain.NewMissingParameter(filterName, "oceanName")
	}
	return Filter{kind: KindWaterGeo, oceanName: oceanName, seaName: seaName, valid: true}, nil
}

// Valid reports whether the filter came from one of the constructors.
func (f *Filter) Valid() bool { return f.valid }

// Kind returns the locsearch variant.
func (f *Filter) Kind() Kind { return f.kind }

// Bounds returns the viewport (MapBounds only).
func (f *Filter) Bounds() geo.Bounds { return f.bounds }

// Location returns the free-text location (Location only).
func (f *Filter) Location() string { return f.location }

// OceanName returns the ocean name to resolve (WaterGeo only).
func (f *Filter) OceanName() string { return f.oceanName }

// SeaName returns the sea name to resolve, empty when not given.
func (f *Filter) SeaName() string { return f.seaName }

// HasSea reports whether a sea name was supplied.
func (f *Filter) HasSea() bool { return f.seaName != "" }
