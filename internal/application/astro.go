package application

import (
	"time"

	"ndastro/internal/domain/entities"
	"ndastro/internal/ports/input"
	"ndastro/internal/ports/output"
	"ndastro/pkg/astro"
)

var _ input.AstroUseCase = (*AstroService)(nil)

// AstroService derives sidereal chart data from a tropical ephemeris.
type AstroService struct {
	eph output.Ephemeris
}

func NewAstroService(eph output.Ephemeris) *AstroService {
	return &AstroService{eph: eph}
}

// PlanetPositions returns sidereal positions for the nine grahas plus the
// ascendant, houses counted from the ascendant's rasi.
func (s *AstroService) PlanetPositions(at time.Time, latitude, longitude float64, ayanamsa string) []entities.PlanetPosition {
	ay := astro.AyanamsaValue(ayanamsa, at)
	asc := s.ascendant(at, latitude, longitude, ay)

	tropical := s.eph.PlanetPositions(at, latitude, longitude)
	positions := make([]entities.PlanetPosition, 0, len(tropical)+1)
	for _, tp := range tropical {
		pos := entities.NewSiderealPosition(tp.Planet, tp.Latitude, tp.Longitude, tp.Distance, ay)
		pos.Retrograde = tp.Retrograde
		pos.HousePositedAt = houseFrom(asc.RasiOccupied, pos.RasiOccupied)
		positions = append(positions, pos)
	}
	return append(positions, asc)
}

// Ascendant returns the sidereal lagna.
func (s *AstroService) Ascendant(at time.Time, latitude, longitude float64, ayanamsa string) entities.PlanetPosition {
	return s.ascendant(at, latitude, longitude, astro.AyanamsaValue(ayanamsa, at))
}

func (s *AstroService) ascendant(at time.Time, latitude, longitude, ayanamsaValue float64) entities.PlanetPosition {
	lon := s.eph.AscendantLongitude(at, latitude, longitude)
	asc := entities.NewSiderealPosition(entities.Ascendant, 0, lon, 0, ayanamsaValue)
	asc.HousePositedAt = 1
	return asc
}

// LunarNodes returns the sidereal positions of Rahu and Kethu.
func (s *AstroService) LunarNodes(at time.Time, ayanamsa string) []entities.PlanetPosition {
	ay := astro.AyanamsaValue(ayanamsa, at)
	nodes := s.eph.LunarNodes(at)
	out := make([]entities.PlanetPosition, 0, len(nodes))
	for _, tp := range nodes {
		pos := entities.NewSiderealPosition(tp.Planet, tp.Latitude, tp.Longitude, tp.Distance, ay)
		pos.Retrograde = tp.Retrograde
		out = append(out, pos)
	}
	return out
}

// SunriseSunset returns local sunrise and sunset for the civil day
// containing at.
func (s *AstroService) SunriseSunset(at time.Time, latitude, longitude float64) (*time.Time, *time.Time) {
	return s.eph.SunriseSunset(at, latitude, longitude)
}

// Kattams returns the twelve chart squares in South Indian order: the
// first square holds the ascendant's rasi (house I) and the rest follow
// in zodiacal order.
func (s *AstroService) Kattams(at time.Time, latitude, longitude float64, ayanamsa string) []entities.Kattam {
	positions := s.PlanetPositions(at, latitude, longitude, ayanamsa)

	var asc entities.PlanetPosition
	byRasi := make(map[entities.Rasi][]entities.PlanetPosition)
	for _, pos := range positions {
		if pos.IsAscendant {
			asc = pos
			continue
		}
		byRasi[pos.RasiOccupied] = append(byRasi[pos.RasiOccupied], pos)
	}

	kattams := make([]entities.Kattam, 0, astro.TotalRasis)
	for offset := 0; offset < astro.TotalRasis; offset++ {
		rasi := entities.Rasi(astro.NormalizeRasi(int(asc.RasiOccupied) + offset))
		k := entities.Kattam{
			Order:       int(rasi),
			IsAscendant: rasi == asc.RasiOccupied,
			Owner:       rasi.Owner(),
			Rasi:        rasi,
			House:       entities.House(offset + 1),
			Planets:     byRasi[rasi],
		}
		if k.IsAscendant {
			k.AscLongitude = asc.NirayanaLongitude
		}
		kattams = append(kattams, k)
	}
	return kattams
}

// houseFrom counts the house of a rasi relative to the ascendant's rasi.
func houseFrom(ascRasi, rasi entities.Rasi) entities.House {
	return entities.House(astro.NormalizeRasi(int(rasi) - int(ascRasi) + 1))
}
