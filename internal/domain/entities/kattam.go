package entities

// Kattam is one square of a South Indian chart. Squares are listed starting
// from the ascendant's rasi, so the first kattam is always house I.
type Kattam struct {
	Order        int // rasi number, 1..12
	IsAscendant  bool
	AscLongitude float64 // sidereal ascendant longitude when IsAscendant
	Owner        Planet
	Rasi         Rasi
	House        House
	Planets      []PlanetPosition
}
