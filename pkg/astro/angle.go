package astro

import "math"

const (
	// DegreeMax is a full circle in degrees.
	DegreeMax = 360.0

	// TotalRasis is the number of zodiac signs.
	TotalRasis = 12

	// DegreesPerRasi is the arc covered by one sign.
	DegreesPerRasi = DegreeMax / TotalRasis

	// TotalNakshatras is the number of lunar mansions.
	TotalNakshatras = 27

	// DegreesPerNakshatra is the arc covered by one lunar mansion (13°20').
	DegreesPerNakshatra = DegreeMax / TotalNakshatras

	// DegreesPerPada is the arc covered by one quarter of a nakshatra (3°20').
	DegreesPerPada = DegreesPerNakshatra / 4
)

// NormalizeDegree wraps a degree value into [0, 360).
func NormalizeDegree(degree float64) float64 {
	degree = math.Mod(degree, DegreeMax)
	if degree < 0 {
		degree += DegreeMax
	}
	return degree
}

// NormalizeRasi wraps a 1-based rasi/house position into [1, 12].
func NormalizeRasi(position int) int {
	position = ((position - 1) % TotalRasis) + 1
	if position < 1 {
		position += TotalRasis
	}
	return position
}

// DMSToDecimal converts degrees, minutes and seconds to decimal degrees.
func DMSToDecimal(degrees, minutes int, seconds float64) float64 {
	return float64(degrees) + float64(minutes)/60 + seconds/3600
}
