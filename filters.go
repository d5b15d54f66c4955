package happywhale

import (
	"github.com/seawatch/happywhale/internal/domain/search/date"
	"github.com/seawatch/happywhale/internal/domain/search/location"
)

// DateFilter selects when an encounter happened. Implemented by DateOn,
// DateBefore, DateAfter, DateBetween and DatePreset.
type DateFilter interface {
	dateFilter() (date.Filter, error)
}

// DateOn matches encounters on a single day. Date is sent verbatim.
type DateOn struct {
	Date string
}

func (f DateOn) dateFilter() (date.Filter, error) { return date.NewSingle(date.KindOn, f.Date) }

// DateBefore matches encounters before Date.
type DateBefore struct {
	Date string
}

func (f DateBefore) dateFilter() (date.Filter, error) { return date.NewSingle(date.KindBefore, f.Date) }

// DateAfter matches encounters after Date.
type DateAfter struct {
	Date string
}

func (f DateAfter) dateFilter() (date.Filter, error) { return date.NewSingle(date.KindAfter, f.Date) }

// DateBetween matches encounters between Start and End.
type DateBetween struct {
	Start string
	End   string
}

func (f DateBetween) dateFilter() (date.Filter, error) { return date.NewBetween(f.Start, f.End) }

// Preset is a relative date range understood by the service.
type Preset int

// Presets. The zero value is not a preset.
const (
	PresetAllTime   = Preset(date.PresetAllTime)
	PresetPastYear  = Preset(date.PresetPastYear)
	PresetPastMonth = Preset(date.PresetPastMonth)
	PresetPastWeek  = Preset(date.PresetPastWeek)
)

// DatePreset matches encounters within a preset range.
type DatePreset struct {
	Preset Preset
}

func (f DatePreset) dateFilter() (date.Filter, error) { return date.NewPreset(date.Preset(f.Preset)) }

// LocationFilter selects where an encounter happened. Implemented by
// WholeWorld, MapBounds, NamedLocation and WaterGeo.
type LocationFilter interface {
	locationFilter() (location.Filter, error)
}

// WholeWorld applies no location restriction.
type WholeWorld struct{}

func (WholeWorld) locationFilter() (location.Filter, error) { return location.WholeWorld(), nil }

// MapBounds restricts to a lat/lng rectangle, south-west to north-east.
type MapBounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

func (f MapBounds) locationFilter() (location.Filter, error) {
	return location.NewMapBounds(f.MinLat, f.MinLng, f.MaxLat, f.MaxLng)
}

// NamedLocation restricts to a free-text place name interpreted by the service.
type NamedLocation struct {
	Location string
}

func (f NamedLocation) locationFilter() (location.Filter, error) { return location.NewNamed(f.Location) }

// WaterGeo restricts to an ocean and optionally one of its seas. Names are
// resolved through the lookup database; unknown names are sent as null.
type WaterGeo struct {
	OceanName string
	SeaName   string
}

func (f WaterGeo) locationFilter() (location.Filter, error) {
	return location.NewWaterGeo(f.OceanName, f.SeaName)
}
