// Package date models the datesearch part of an encounter query.
package date

import (
	"fmt"

	"github.com/seawatch/happywhale/internal/domain"
)

const filterName = "datesearch"

// Kind is the datesearch variant. Values are the wire "type" codes.
type Kind int

// Datesearch variants.
const (
	KindOn Kind = iota
	KindBefore
	KindAfter
	KindBetween
	KindPreset
)

// IsValid checks if the kind is one of the supported variants.
func (k Kind) IsValid() bool {
	return k >= KindOn && k <= KindPreset
}

func (k Kind) String() string {
	switch k {
	case KindOn:
		return "on"
	case KindBefore:
		return "before"
	case KindAfter:
		return "after"
	case KindBetween:
		return "between"
	case KindPreset:
		return "preset"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Preset is a fixed relative date range. The zero value means "not set".
type Preset int

// Preset ranges.
const (
	PresetAllTime Preset = iota + 1
	PresetPastYear
	PresetPastMonth
	PresetPastWeek
)

// IsValid checks if the preset is one of the supported ranges.
func (p Preset) IsValid() bool {
	return p >= PresetAllTime && p <= PresetPastWeek
}

// Code returns the wire value (AllTime=0 ... PastWeek=3).
func (p Preset) Code() int { return int(p) - 1 }

// Filter is a validated datesearch. Exactly one variant is populated.
type Filter struct {
	kind      Kind
	startDate string
	endDate   string
	preset    Preset
	valid     bool
}

// NewSingle builds an On, Before or After filter around one date.
func NewSingle(kind Kind, startDate string) (Filter, error) {
	switch kind {
	case KindOn, KindBefore, KindAfter:
	default:
		return Filter{}, fmt.Errorf("%s %s is not a single-date variant: %w", filterName, kind, domain.ErrInvalidVariant)
	}
	if startDate == "" {
		return Filter{}, domain.NewMissingParameter(filterName, "startdate")
	}
	return Filter{kind: kind, startDate: startDate, valid: true}, nil
}

// NewBetween builds a Between filter. Both dates are required.
func NewBetween(startDate, endDate string) (Filter, error) {
	if startDate == "" {
		return Filter{}, domain.NewMissingParameter(filterName, "startdate")
	}
	if endDate == "" {
		return Filter{}, domain.NewMissingParameter(filterName, "enddate")
	}
	return Filter{kind: KindBetween, startDate: startDate, endDate: endDate, valid: true}, nil
}

// NewPreset builds a Preset filter.
func NewPreset(p Preset) (Filter, error) {
	if p == 0 {
		return Filter{}, domain.NewMissingParameter(filterName, "preset")
	}
	if !p.IsValid() {
		return Filter{}, fmt.Errorf("%s preset %d: %w", filterName, int(p), domain.ErrInvalidVariant)
	}
	return Filter{kind: KindPreset, preset: p, valid: true}, nil
}

// Valid reports whether the filter came from one of the constructors.
func (f *Filter) Valid() bool { return f.valid }

// Kind returns the datesearch variant.
func (f *Filter) Kind() Kind { return f.kind }

// StartDate returns the start date (empty for presets).
func (f *Filter) StartDate() string { return f.startDate }

// EndDate returns the end date (Between only).
func (f *Filter) EndDate() string { return f.endDate }

// Preset returns the preset range (Preset only).
func (f *Filter) Preset() Preset { return f.preset }
