// Package ephemeris computes geocentric ecliptic positions from mean
// orbital elements. Accuracy is on the order of arc minutes, which is
// enough to place planets in signs and nakshatras; it is not an
// ephemeris-grade source. A higher-precision provider can replace it
// behind the output.Ephemeris port.
package ephemeris

import (
	"math"
	"time"

	"ndastro/internal/domain/entities"
	"ndastro/internal/ports/output"
	"ndastro/pkg/astro"
)

// Ensure Provider implements the output port.
var _ output.Ephemeris = (*Provider)(nil)

// Provider is stateless; the zero value is ready to use.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

const (
	kmPerAU          = 149597870.7
	kmPerEarthRadius = 6378.14
)

// Mean-element epoch: 1999-12-31 00:00 UT (d = 0).
var elementEpoch = time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)

func daysSince(t time.Time) float64 {
	return t.UTC().Sub(elementEpoch).Hours() / 24
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(r float64) float64   { return r * 180 / math.Pi }

// orbit holds mean orbital elements at epoch plus their daily rates.
type orbit struct {
	n, nr float64 // longitude of ascending node
	i, ir float64 // inclination
	w, wr float64 // argument of perihelion
	a     float64 // semi-major axis (AU; Earth radii for the Moon)
	e, er float64 // eccentricity
	m, mr float64 // mean anomaly
}

func (o orbit) at(d float64) (n, i, w, a, e, m float64) {
	return astro.NormalizeDegree(o.n + o.nr*d),
		o.i + o.ir*d,
		astro.NormalizeDegree(o.w + o.wr*d),
		o.a,
		o.e + o.er*d,
		astro.NormalizeDegree(o.m + o.mr*d)
}

var (
	sunOrbit = orbit{
		w: 282.9404, wr: 4.70935e-5,
		a: 1.0,
		e: 0.016709, er: -1.151e-9,
		m: 356.0470, mr: 0.9856002585,
	}
	moonOrbit = orbit{
		n: 125.1228, nr: -0.0529538083,
		i: 5.1454,
		w: 318.0634, wr: 0.1643573223,
		a: 60.2666,
		e: 0.054900,
		m: 115.3654, mr: 13.0649929509,
	}
	planetOrbits = map[entities.Planet]orbit{
		entities.Mercury: {
			n: 48.3313, nr: 3.24587e-5,
			i: 7.0047, ir: 5.00e-8,
			w: 29.1241, wr: 1.01444e-5,
			a: 0.387098,
			e: 0.205635, er: 5.59e-10,
			m: 168.6562, mr: 4.0923344368,
		},
		entities.Venus: {
			n: 76.6799, nr: 2.46590e-5,
			i: 3.3946, ir: 2.75e-8,
			w: 54.8910, wr: 1.38374e-5,
			a: 0.723330,
			e: 0.006773, er: -1.302e-9,
			m: 48.0052, mr: 1.6021302244,
		},
		entities.Mars: {
			n: 49.5574, nr: 2.11081e-5,
			i: 1.8497, ir: -1.78e-8,
			w: 286.5016, wr: 2.92961e-5,
			a: 1.523688,
			e: 0.093405, er: 2.516e-9,
			m: 18.6021, mr: 0.5240207766,
		},
		entities.Jupiter: {
			n: 100.4542, nr: 2.76854e-5,
			i: 1.3030, ir: -1.557e-7,
			w: 273.8777, wr: 1.64505e-5,
			a: 5.20256,
			e: 0.048498, er: 4.469e-9,
			m: 19.8950, mr: 0.0830853001,
		},
		entities.Saturn: {
			n: 113.6634, nr: 2.38980e-5,
			i: 2.4886, ir: -1.081e-7,
			w: 339.3939, wr: 2.97661e-5,
			a: 9.55475,
			e: 0.055546, er: -9.499e-9,
			m: 316.9670, mr: 0.0334442282,
		},
	}
)

// solveKepler returns the eccentric anomaly in degrees.
func solveKepler(mDeg, e float64) float64 {
	m := rad(mDeg)
	ecc := m + e*math.Sin(m)*(1+e*math.Cos(m))
	for iter := 0; iter < 10; iter++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-8 {
			break
		}
	}
	return deg(ecc)
}

// trueAnomaly returns the true anomaly (degrees) and the orbital radius in
// units of the semi-major axis' unit.
func trueAnomaly(mDeg, e, a float64) (v, r float64) {
	ecc := rad(solveKepler(mDeg, e))
	xv := a * (math.Cos(ecc) - e)
	yv := a * math.Sqrt(1-e*e) * math.Sin(ecc)
	return astro.NormalizeDegree(deg(math.Atan2(yv, xv))), math.Sqrt(xv*xv + yv*yv)
}

// sunState returns the Sun's geocentric ecliptic longitude (degrees) and
// distance (AU), plus the Sun's mean anomaly and argument of perihelion for
// reuse in lunar perturbations and sidereal time.
func sunState(d float64) (lon, r, m, w float64) {
	_, _, w, a, e, m := sunOrbit.at(d)
	v, r := trueAnomaly(m, e, a)
	return astro.NormalizeDegree(v + w), r, m, w
}

// heliocentric returns rectangular ecliptic coordinates from elements.
func heliocentric(o orbit, d float64) (x, y, z float64) {
	n, i, w, a, e, m := o.at(d)
	v, r := trueAnomaly(m, e, a)
	vw := rad(v + w)
	nn := rad(n)
	ii := rad(i)
	x = r * (math.Cos(nn)*math.Cos(vw) - math.Sin(nn)*math.Sin(vw)*math.Cos(ii))
	y = r * (math.Sin(nn)*math.Cos(vw) + math.Cos(nn)*math.Sin(vw)*math.Cos(ii))
	z = r * math.Sin(vw) * math.Sin(ii)
	return x, y, z
}

// planetGeo returns the geocentric ecliptic longitude, latitude (degrees)
// and distance (AU) of one of Mercury..Saturn.
func planetGeo(p entities.Planet, d float64) (lon, lat, dist float64) {
	xh, yh, zh := heliocentric(planetOrbits[p], d)
	sunLon, sunR, _, _ := sunState(d)
	xg := xh + sunR*math.Cos(rad(sunLon))
	yg := yh + sunR*math.Sin(rad(sunLon))
	zg := zh
	lon = astro.NormalizeDegree(deg(math.Atan2(yg, xg)))
	lat = deg(math.Atan2(zg, math.Sqrt(xg*xg+yg*yg)))
	return lon, lat, math.Sqrt(xg*xg + yg*yg + zg*zg)
}

// moonGeo returns the Moon's geocentric ecliptic longitude, latitude
// (degrees) and distance (Earth radii), with the dominant perturbation
// terms applied.
func moonGeo(d float64) (lon, lat, dist float64) {
	xg, yg, zg := heliocentric(moonOrbit, d)
	lon = astro.NormalizeDegree(deg(math.Atan2(yg, xg)))
	lat = deg(math.Atan2(zg, math.Sqrt(xg*xg+yg*yg)))
	dist = math.Sqrt(xg*xg + yg*yg + zg*zg)

	_, _, ws, _, _, ms := sunOrbit.at(d)
	nm, _, wm, _, _, mm := moonOrbit.at(d)
	ls := astro.NormalizeDegree(ms + ws)           // Sun mean longitude
	lm := astro.NormalizeDegree(mm + wm + nm)      // Moon mean longitude
	dd := rad(astro.NormalizeDegree(lm - ls))      // mean elongation
	ff := rad(astro.NormalizeDegree(lm - nm))      // argument of latitude
	msr, mmr := rad(ms), rad(mm)

	lon += -1.274*math.Sin(mmr-2*dd) +
		0.658*math.Sin(2*dd) -
		0.186*math.Sin(msr) -
		0.059*math.Sin(2*mmr-2*dd) -
		0.057*math.Sin(mmr-2*dd+msr) +
		0.053*math.Sin(mmr+2*dd) -
		0.046*math.Sin(2*dd-msr) -
		0.041*math.Sin(mmr-msr) -
		0.035*math.Sin(dd) -
		0.031*math.Sin(mmr+msr)
	lat += -0.173*math.Sin(ff-2*dd) -
		0.055*math.Sin(mmr-ff-2*dd) -
		0.046*math.Sin(mmr+ff-2*dd) +
		0.033*math.Sin(ff+2*dd) +
		0.017*math.Sin(2*mmr+ff)

	return astro.NormalizeDegree(lon), lat, dist
}

// tropicalLongitude returns the geocentric ecliptic longitude of a body.
func tropicalLongitude(p entities.Planet, d float64) float64 {
	switch p {
	case entities.Sun:
		lon, _, _, _ := sunState(d)
		return lon
	case entities.Moon:
		lon, _, _ := moonGeo(d)
		return lon
	case entities.Rahu:
		return astro.NormalizeDegree(moonOrbit.n + moonOrbit.nr*d)
	case entities.Kethu:
		return astro.NormalizeDegree(moonOrbit.n + moonOrbit.nr*d + 180)
	default:
		lon, _, _ := planetGeo(p, d)
		return lon
	}
}

// isRetrograde reports whether the apparent longitude is decreasing. The
// nodes always move backwards; the Sun and Moon never do.
func isRetrograde(p entities.Planet, d float64) bool {
	switch p {
	case entities.Rahu, entities.Kethu:
		return true
	case entities.Sun, entities.Moon, entities.Ascendant:
		return false
	}
	const step = 1.0 / 24 // one hour
	before := tropicalLongitude(p, d)
	after := tropicalLongitude(p, d+step)
	diff := math.Mod(after-before+540, 360) - 180
	return diff < 0
}

func (pr *Provider) position(p entities.Planet, d float64) output.TropicalPosition {
	pos := output.TropicalPosition{Planet: p, Retrograde: isRetrograde(p, d)}
	switch p {
	case entities.Sun:
		lon, r, _, _ := sunState(d)
		pos.Longitude, pos.Distance = lon, r*kmPerAU
	case entities.Moon:
		lon, lat, r := moonGeo(d)
		pos.Longitude, pos.Latitude, pos.Distance = lon, lat, r*kmPerEarthRadius
	case entities.Rahu, entities.Kethu:
		pos.Longitude = tropicalLongitude(p, d)
	default:
		lon, lat, r := planetGeo(p, d)
		pos.Longitude, pos.Latitude, pos.Distance = lon, lat, r*kmPerAU
	}
	return pos
}

// PlanetPositions returns tropical positions for Sun through Saturn plus
// the lunar nodes, in wire order.
func (pr *Provider) PlanetPositions(t time.Time, latitude, longitude float64) []output.TropicalPosition {
	d := daysSince(t)
	bodies := []entities.Planet{
		entities.Sun, entities.Moon, entities.Mercury, entities.Venus,
		entities.Mars, entities.Jupiter, entities.Saturn,
		entities.Rahu, entities.Kethu,
	}
	out := make([]output.TropicalPosition, len(bodies))
	for idx, p := range bodies {
		out[idx] = pr.position(p, d)
	}
	return out
}

// LunarNodes returns the positions of Rahu and Kethu.
func (pr *Provider) LunarNodes(t time.Time) []output.TropicalPosition {
	d := daysSince(t)
	return []output.TropicalPosition{
		pr.position(entities.Rahu, d),
		pr.position(entities.Kethu, d),
	}
}

// obliquity returns the mean obliquity of the ecliptic in degrees.
func obliquity(d float64) float64 {
	return 23.4393 - 3.563e-7*d
}

// localSiderealTime returns the local sidereal time in degrees.
func localSiderealTime(t time.Time, longitude float64) float64 {
	d := daysSince(t)
	_, _, ms, ws := sunState(d)
	gmst0 := astro.NormalizeDegree(ms + ws + 180)
	ut := float64(t.UTC().Hour()) + float64(t.UTC().Minute())/60 + float64(t.UTC().Second())/3600
	return astro.NormalizeDegree(gmst0 + ut*15 + longitude)
}

// AscendantLongitude returns the tropical ecliptic longitude of the
// ascendant for the given moment and geographic location.
func (pr *Provider) AscendantLongitude(t time.Time, latitude, longitude float64) float64 {
	d := daysSince(t)
	ramc := rad(localSiderealTime(t, longitude))
	eps := rad(obliquity(d))
	phi := rad(latitude)
	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	return astro.NormalizeDegree(deg(asc))
}
