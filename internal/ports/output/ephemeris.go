package output

import (
	"time"

	"ndastro/internal/domain/entities"
)

// TropicalPosition is a raw geocentric ecliptic position as produced by an
// ephemeris, before any sidereal correction.
type TropicalPosition struct {
	Planet     entities.Planet
	Latitude   float64 // ecliptic latitude, degrees
	Longitude  float64 // tropical ecliptic longitude, degrees
	Distance   float64 // geocentric distance, km (0 for points)
	Retrograde bool
}

// Ephemeris supplies the astronomical quantities the chart services need.
// Implementations may trade precision for simplicity; positions are used for
// sign placement, not for ephemeris-grade output.
type Ephemeris interface {
	// PlanetPositions returns tropical positions for Sun through Saturn plus
	// the lunar nodes, in wire order.
	PlanetPositions(t time.Time, latitude, longitude float64) []TropicalPosition

	// LunarNodes returns the positions of Rahu and Kethu.
	LunarNodes(t time.Time) []TropicalPosition

	// AscendantLongitude returns the tropical ecliptic longitude of the
	// ascendant for the given moment and geographic location.
	AscendantLongitude(t time.Time, latitude, longitude float64) float64

	// SunriseSunset returns the local sunrise and sunset instants for the
	// civil day containing t. Either may be nil at polar latitudes.
	SunriseSunset(t time.Time, latitude, longitude float64) (*time.Time, *time.Time)
}
