package entities

// Planet identifies a graha tracked by the chart services. The numbering
// matches the wire format used by API responses.
type Planet int

const (
	Sun Planet = iota + 1
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Kethu
	Ascendant
)

// Planets lists every known planet in wire order.
var Planets = []Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Kethu, Ascendant}

var planetKeys = map[Planet]string{
	Sun:       "sun",
	Moon:      "moon",
	Mercury:   "mercury",
	Venus:     "venus",
	Mars:      "mars",
	Jupiter:   "jupiter",
	Saturn:    "saturn",
	Rahu:      "rahu",
	Kethu:     "kethu",
	Ascendant: "ascendant",
}

var planetShortKeys = map[Planet]string{
	Sun:       "su",
	Moon:      "mo",
	Mercury:   "me",
	Venus:     "ve",
	Mars:      "ma",
	Jupiter:   "ju",
	Saturn:    "sa",
	Rahu:      "ra",
	Kethu:     "ke",
	Ascendant: "as",
}

var planetNames = map[Planet]string{
	Sun:       "Sun",
	Moon:      "Moon",
	Mercury:   "Mercury",
	Venus:     "Venus",
	Mars:      "Mars",
	Jupiter:   "Jupiter",
	Saturn:    "Saturn",
	Rahu:      "Rahu",
	Kethu:     "Kethu",
	Ascendant: "Ascendant",
}

// Key returns the semantic translation key for the planet name.
func (p Planet) Key() string { return planetKeys[p] }

// ShortKey returns the semantic translation key for the planet's short code.
func (p Planet) ShortKey() string { return planetShortKeys[p] }

// String returns the canonical English name.
func (p Planet) String() string { return planetNames[p] }

// Valid reports whether p is one of the known planets.
func (p Planet) Valid() bool { return p >= Sun && p <= Ascendant }
