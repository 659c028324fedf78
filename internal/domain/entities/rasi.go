package entities

// Rasi is a zodiac sign, numbered 1 (Aries/Mesham) through 12 (Pisces/Meenam).
type Rasi int

const (
	Aries Rasi = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Rasis lists the twelve signs in zodiacal order.
var Rasis = []Rasi{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

var rasiKeys = map[Rasi]string{
	Aries:       "aries",
	Taurus:      "taurus",
	Gemini:      "gemini",
	Cancer:      "cancer",
	Leo:         "leo",
	Virgo:       "virgo",
	Libra:       "libra",
	Scorpio:     "scorpio",
	Sagittarius: "sagittarius",
	Capricorn:   "capricorn",
	Aquarius:    "aquarius",
	Pisces:      "pisces",
}

var rasiNames = map[Rasi]string{
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
	Pisces:      "Pisces",
}

// Classical sign lordship.
var rasiOwners = map[Rasi]Planet{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// Key returns the semantic translation key for the sign name.
func (r Rasi) Key() string { return rasiKeys[r] }

// String returns the canonical English name.
func (r Rasi) String() string { return rasiNames[r] }

// Owner returns the planet that rules the sign.
func (r Rasi) Owner() Planet { return rasiOwners[r] }

// Valid reports whether r is one of the twelve signs.
func (r Rasi) Valid() bool { return r >= Aries && r <= Pisces }
