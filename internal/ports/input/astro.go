package input

import (
	"time"

	"ndastro/internal/domain/entities"
)

// AstroUseCase computes chart data. All operations are pure functions of
// their inputs; no I/O or request state is involved.
type AstroUseCase interface {
	// PlanetPositions returns sidereal positions for the nine grahas at the
	// given moment and location, houses counted from the ascendant.
	PlanetPositions(at time.Time, latitude, longitude float64, ayanamsa string) []entities.PlanetPosition

	// Ascendant returns the sidereal lagna.
	Ascendant(at time.Time, latitude, longitude float64, ayanamsa string) entities.PlanetPosition

	// LunarNodes returns the sidereal positions of Rahu and Kethu.
	LunarNodes(at time.Time, ayanamsa string) []entities.PlanetPosition

	// SunriseSunset returns local sunrise and sunset for the civil day
	// containing at. Either may be nil at extreme latitudes.
	SunriseSunset(at time.Time, latitude, longitude float64) (*time.Time, *time.Time)

	// Kattams returns the twelve chart squares in South Indian order,
	// starting from the ascendant's rasi.
	Kattams(at time.Time, latitude, longitude float64, ayanamsa string) []entities.Kattam
}
