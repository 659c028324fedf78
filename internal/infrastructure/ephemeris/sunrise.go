package ephemeris

import (
	"math"
	"time"

	"ndastro/pkg/astro"
)

// Standard altitude of the Sun's upper limb at rise/set, including
// refraction.
const riseSetAltitude = -0.833

// SunriseSunset returns the local sunrise and sunset instants (UTC) for the
// civil day containing t. Both are nil when the Sun stays above or below
// the horizon all day.
func (pr *Provider) SunriseSunset(t time.Time, latitude, longitude float64) (*time.Time, *time.Time) {
	day := time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
	d := daysSince(day)

	sunLon, _, ms, ws := sunState(d)
	eps := rad(obliquity(d))

	// Equatorial coordinates of the Sun.
	x := math.Cos(rad(sunLon))
	y := math.Sin(rad(sunLon)) * math.Cos(eps)
	z := math.Sin(rad(sunLon)) * math.Sin(eps)
	ra := deg(math.Atan2(y, x))
	decl := math.Asin(z)

	// UT of solar transit at this longitude.
	gmst0 := astro.NormalizeDegree(ms + ws + 180)
	transit := math.Mod((ra-gmst0-longitude)/15+48, 24)

	phi := rad(latitude)
	cosLHA := (math.Sin(rad(riseSetAltitude)) - math.Sin(phi)*math.Sin(decl)) /
		(math.Cos(phi) * math.Cos(decl))
	if cosLHA < -1 || cosLHA > 1 {
		return nil, nil
	}
	lhaHours := deg(math.Acos(cosLHA)) / 15

	sunrise := day.Add(time.Duration((transit - lhaHours) * float64(time.Hour)))
	sunset := day.Add(time.Duration((transit + lhaHours) * float64(time.Hour)))
	return &sunrise, &sunset
}
