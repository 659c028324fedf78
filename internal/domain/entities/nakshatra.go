package entities

import "ndastro/pkg/astro"

// Nakshatra is a lunar mansion, 1 (Ashwini) through 27 (Revathi).
// Each spans 13°20' of the ecliptic and divides into four padas of 3°20'.
type Nakshatra int

// Valid reports whether n is within 1..27.
func (n Nakshatra) Valid() bool { return n >= 1 && n <= astro.TotalNakshatras }

// NakshatraOf returns the lunar mansion containing the sidereal longitude.
func NakshatraOf(siderealLongitude float64) Nakshatra {
	lon := astro.NormalizeDegree(siderealLongitude)
	return Nakshatra(int(lon/astro.DegreesPerNakshatra) + 1)
}

// PadaOf returns the quarter (1..4) of the nakshatra containing the
// sidereal longitude.
func PadaOf(siderealLongitude float64) int {
	lon := astro.NormalizeDegree(siderealLongitude)
	within := lon - float64(int(lon/astro.DegreesPerNakshatra))*astro.DegreesPerNakshatra
	return int(within/astro.DegreesPerPada) + 1
}
