package geo

import (
	"fmt"

	"github.com/seawatch/happywhale/internal/domain"
)

// LatLng is a point in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Bounds is a map viewport given by its south-west and north-east corners.
// MinLng may exceed MaxLng when the viewport crosses the antimeridian.
type Bounds struct {
	SouthWest LatLng
	NorthEast LatLng
}

// NewBounds validates the corner coordinates and builds Bounds.
func NewBounds(minLat, minLng, maxLat, maxLng float64) (Bounds, error) {
	if !ValidateCoordinates(minLat, minLng) {
		return Bounds{}, fmt.Errorf("south-west corner (%g, %g): %w", minLat, minLng, domain.ErrInvalidParameter)
	}
	if !ValidateCoordinates(maxLat, maxLng) {
		return Bounds{}, fmt.Errorf("north-east corner (%g, %g): %w", maxLat, maxLng, domain.ErrInvalidParameter)
	}
	return Bounds{
		SouthWest: LatLng{Lat: minLat, Lng: minLng},
		NorthEast: LatLng{Lat: maxLat, Lng: maxLng},
	}, nil
}

// ValidateCoordinates checks that latitude is in [-90,90] and longitude in [-180,180].
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
