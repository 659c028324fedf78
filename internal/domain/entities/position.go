package entities

import "ndastro/pkg/astro"

// PlanetPosition is the computed placement of one planet (or the ascendant)
// at a given moment, in both tropical and sidereal (nirayana) terms.
type PlanetPosition struct {
	Planet            Planet
	Latitude          float64 // ecliptic latitude, degrees
	Longitude         float64 // tropical ecliptic longitude, degrees
	Distance          float64 // geocentric distance, km (0 for points)
	NirayanaLongitude float64 // sidereal longitude, degrees
	AdvancedBy        float64 // arc advanced within the occupied rasi
	RasiOccupied      Rasi
	HousePositedAt    House
	Nakshatra         Nakshatra
	Pada              int
	Retrograde        bool
	IsAscendant       bool
}

// NewSiderealPosition derives a PlanetPosition from a tropical ecliptic
// position and an ayanamsa value. The house is left at zero; it depends on
// the ascendant and is assigned by the caller.
func NewSiderealPosition(planet Planet, latitude, longitude, distance, ayanamsa float64) PlanetPosition {
	nirayana := astro.NormalizeDegree(longitude - ayanamsa)
	return PlanetPosition{
		Planet:            planet,
		Latitude:          latitude,
		Longitude:         astro.NormalizeDegree(longitude),
		Distance:          distance,
		NirayanaLongitude: nirayana,
		AdvancedBy:        nirayana - float64(int(nirayana/astro.DegreesPerRasi))*astro.DegreesPerRasi,
		RasiOccupied:      Rasi(int(nirayana/astro.DegreesPerRasi) + 1),
		Nakshatra:         NakshatraOf(nirayana),
		Pada:              PadaOf(nirayana),
		IsAscendant:       planet == Ascendant,
	}
}
