package astro

import (
	"strings"
	"time"
)

// Lahiri (Chitrapaksha) ayanamsa at J2000 and its annual drift from the
// general precession rate.
const (
	lahiriAtJ2000  = 23.853
	degreesPerYear = 50.2719 / 3600
)

var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// AyanamsaValue resolves a named ayanamsa system to its value in degrees at
// the given date. Unknown names resolve to 0, i.e. tropical positions.
func AyanamsaValue(name string, at time.Time) float64 {
	switch strings.ToLower(name) {
	case "lahiri", "chitrapaksha":
		years := at.UTC().Sub(j2000).Hours() / 24 / 365.25
		return lahiriAtJ2000 + degreesPerYear*years
	default:
		return 0
	}
}
