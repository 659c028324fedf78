package ephemeris

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndastro/internal/domain/entities"
)

// Reference moment used by the mean-element tables' published worked
// example: 1990 April 19, 00:00 UT.
var refTime = time.Date(1990, time.April, 19, 0, 0, 0, 0, time.UTC)

func TestDaysSince(t *testing.T) {
	assert.InDelta(t, -3543.0, daysSince(refTime), 1e-6)
	assert.InDelta(t, 1.0, daysSince(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)), 1e-6)
	assert.InDelta(t, 1.5, daysSince(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)), 1e-6)
}

func TestSunLongitudeWorkedExample(t *testing.T) {
	lon, r, _, _ := sunState(daysSince(refTime))
	assert.InDelta(t, 26.8388, lon, 0.01)
	assert.InDelta(t, 0.9904, r, 0.001)
}

func TestMoonLongitudeWorkedExample(t *testing.T) {
	lon, lat, dist := moonGeo(daysSince(refTime))
	assert.InDelta(t, 306.95, lon, 0.3)
	assert.InDelta(t, -0.57, lat, 0.3)
	assert.InDelta(t, 60.7, dist, 1.0)
}

func TestInnerPlanetsStayNearSun(t *testing.T) {
	p := NewProvider()
	for _, at := range []time.Time{
		refTime,
		time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		d := daysSince(at)
		sunLon, _, _, _ := sunState(d)
		positions := p.PlanetPositions(at, 12.59, 77.36)

		byPlanet := map[entities.Planet]float64{}
		for _, pos := range positions {
			assert.GreaterOrEqual(t, pos.Longitude, 0.0)
			assert.Less(t, pos.Longitude, 360.0)
			byPlanet[pos.Planet] = pos.Longitude
		}

		// Geometry bounds the elongation of the inner planets.
		assert.LessOrEqual(t, elongation(byPlanet[entities.Mercury], sunLon), 30.0)
		assert.LessOrEqual(t, elongation(byPlanet[entities.Venus], sunLon), 49.0)
	}
}

func elongation(a, b float64) float64 {
	diff := math.Abs(math.Mod(a-b+540, 360) - 180)
	return 180 - diff
}

func TestLunarNodes(t *testing.T) {
	p := NewProvider()
	nodes := p.LunarNodes(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, nodes, 2)

	assert.Equal(t, entities.Rahu, nodes[0].Planet)
	assert.Equal(t, entities.Kethu, nodes[1].Planet)
	assert.InDelta(t, 125.07, nodes[0].Longitude, 0.01)
	assert.InDelta(t, 305.07, nodes[1].Longitude, 0.01)
	assert.True(t, nodes[0].Retrograde)
	assert.True(t, nodes[1].Retrograde)
}

func TestRetrogradeKnownPeriods(t *testing.T) {
	// Mars was retrograde around its 2003 opposition.
	assert.True(t, isRetrograde(entities.Mars, daysSince(time.Date(2003, 8, 28, 0, 0, 0, 0, time.UTC))))
	assert.False(t, isRetrograde(entities.Mars, daysSince(time.Date(2003, 1, 15, 0, 0, 0, 0, time.UTC))))

	// Mercury retrograde, late April 2023.
	assert.True(t, isRetrograde(entities.Mercury, daysSince(time.Date(2023, 4, 28, 0, 0, 0, 0, time.UTC))))

	d := daysSince(refTime)
	assert.False(t, isRetrograde(entities.Sun, d))
	assert.False(t, isRetrograde(entities.Moon, d))
}

func TestAscendantMatchesSunAtSunrise(t *testing.T) {
	p := NewProvider()
	at := time.Date(2024, 3, 21, 6, 0, 0, 0, time.UTC)
	lat, lon := 12.59, 77.36

	sunrise, _ := p.SunriseSunset(at, lat, lon)
	require.NotNil(t, sunrise)

	asc := p.AscendantLongitude(*sunrise, lat, lon)
	sunLon, _, _, _ := sunState(daysSince(*sunrise))
	assert.LessOrEqual(t, elongation(asc, sunLon), 3.0)
}

func TestAscendantAdvancesWithTime(t *testing.T) {
	p := NewProvider()
	at := time.Date(2024, 3, 21, 3, 0, 0, 0, time.UTC)
	first := p.AscendantLongitude(at, 12.59, 77.36)
	later := p.AscendantLongitude(at.Add(2*time.Hour), 12.59, 77.36)

	advanced := math.Mod(later-first+360, 360)
	assert.Greater(t, advanced, 15.0)
	assert.Less(t, advanced, 50.0)
}

func TestSunriseSunset(t *testing.T) {
	p := NewProvider()

	// Equinox day near Bengaluru: roughly a 12 hour day.
	at := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)
	sunrise, sunset := p.SunriseSunset(at, 12.59, 77.36)
	require.NotNil(t, sunrise)
	require.NotNil(t, sunset)
	daylight := sunset.Sub(*sunrise)
	assert.Greater(t, daylight, 11*time.Hour+30*time.Minute)
	assert.Less(t, daylight, 12*time.Hour+30*time.Minute)
	assert.True(t, sunset.After(*sunrise))

	// Midnight sun above the Arctic circle in June.
	sunrise, sunset = p.SunriseSunset(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), 75.0, 20.0)
	assert.Nil(t, sunrise)
	assert.Nil(t, sunset)

	// Polar night in December.
	sunrise, sunset = p.SunriseSunset(time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC), 75.0, 20.0)
	assert.Nil(t, sunrise)
	assert.Nil(t, sunset)
}

