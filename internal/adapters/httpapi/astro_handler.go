package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"ndastro/internal/domain"
	"ndastro/internal/domain/entities"
	"ndastro/internal/ports/input"
)

// Query defaults match the original service's home coordinates.
const (
	defaultLatitude  = 12.59
	defaultLongitude = 77.36
	defaultAyanamsa  = "lahiri"
)

// AstroHandler serves on-demand chart computations.
type AstroHandler struct {
	server *Server
	astro  input.AstroUseCase
}

type astroQuery struct {
	at        time.Time
	latitude  float64
	longitude float64
	ayanamsa  string
}

// parseAstroQuery reads the shared astro parameters, applying the defaults
// for anything absent.
func parseAstroQuery(r *http.Request) (astroQuery, error) {
	q := r.URL.Query()
	out := astroQuery{
		at:        time.Now().UTC(),
		latitude:  defaultLatitude,
		longitude: defaultLongitude,
		ayanamsa:  defaultAyanamsa,
	}

	if v := q.Get("dateandtime"); v != "" {
		at, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return out, domain.ErrInvalidDatetime
		}
		out.at = at.UTC()
	}
	if v := q.Get("lat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil || lat < -90 || lat > 90 {
			return out, domain.ErrInvalidCoordinates
		}
		out.latitude = lat
	}
	if v := q.Get("lon"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil || lon < -180 || lon > 180 {
			return out, domain.ErrInvalidCoordinates
		}
		out.longitude = lon
	}
	if v := q.Get("ayanamsa"); v != "" {
		out.ayanamsa = v
	}
	return out, nil
}

type planetPositionDTO struct {
	Planet            string  `json:"planet"`
	Name              string  `json:"name"`
	ShortName         string  `json:"short_name"`
	Longitude         float64 `json:"longitude"`
	NirayanaLongitude float64 `json:"nirayana_longitude"`
	AdvancedBy        float64 `json:"advanced_by"`
	Rasi              int     `json:"rasi"`
	RasiName          string  `json:"rasi_name"`
	House             int     `json:"house"`
	HouseNumeral      string  `json:"house_numeral"`
	Nakshatra         int     `json:"nakshatra"`
	Pada              int     `json:"pada"`
	Retrograde        bool    `json:"retrograde"`
}

func (s *Server) planetPositionDTO(lang string, pos entities.PlanetPosition) planetPositionDTO {
	return planetPositionDTO{
		Planet:            pos.Planet.Key(),
		Name:              s.translator.T(lang, pos.Planet.Key(), nil),
		ShortName:         s.translator.T(lang, pos.Planet.ShortKey(), nil),
		Longitude:         pos.Longitude,
		NirayanaLongitude: pos.NirayanaLongitude,
		AdvancedBy:        pos.AdvancedBy,
		Rasi:              int(pos.RasiOccupied),
		RasiName:          s.translator.T(lang, pos.RasiOccupied.Key(), nil),
		House:             int(pos.HousePositedAt),
		HouseNumeral:      pos.HousePositedAt.String(),
		Nakshatra:         int(pos.Nakshatra),
		Pada:              pos.Pada,
		Retrograde:        pos.Retrograde,
	}
}

func (s *Server) planetPositionDTOs(lang string, positions []entities.PlanetPosition) []planetPositionDTO {
	out := make([]planetPositionDTO, 0, len(positions))
	for _, pos := range positions {
		out = append(out, s.planetPositionDTO(lang, pos))
	}
	return out
}

type positionsResponse struct {
	DateAndTime time.Time           `json:"dateandtime"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	Ayanamsa    string              `json:"ayanamsa"`
	Positions   []planetPositionDTO `json:"positions"`
}

func (h *AstroHandler) Planets(w http.ResponseWriter, r *http.Request) {
	q, err := parseAstroQuery(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	positions := h.astro.PlanetPositions(q.at, q.latitude, q.longitude, q.ayanamsa)
	h.server.writeJSON(w, http.StatusOK, positionsResponse{
		DateAndTime: q.at,
		Latitude:    q.latitude,
		Longitude:   q.longitude,
		Ayanamsa:    q.ayanamsa,
		Positions:   h.server.planetPositionDTOs(requestLanguage(r.Context()), positions),
	})
}

func (h *AstroHandler) Ascendant(w http.ResponseWriter, r *http.Request) {
	q, err := parseAstroQuery(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	asc := h.astro.Ascendant(q.at, q.latitude, q.longitude, q.ayanamsa)
	h.server.writeJSON(w, http.StatusOK, h.server.planetPositionDTO(requestLanguage(r.Context()), asc))
}

func (h *AstroHandler) LunarNodes(w http.ResponseWriter, r *http.Request) {
	q, err := parseAstroQuery(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	nodes := h.astro.LunarNodes(q.at, q.ayanamsa)
	h.server.writeJSON(w, http.StatusOK, h.server.planetPositionDTOs(requestLanguage(r.Context()), nodes))
}

type sunriseSunsetResponse struct {
	DateAndTime time.Time  `json:"dateandtime"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Sunrise     *time.Time `json:"sunrise"`
	Sunset      *time.Time `json:"sunset"`
}

func (h *AstroHandler) SunriseSunset(w http.ResponseWriter, r *http.Request) {
	q, err := parseAstroQuery(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	sunrise, sunset := h.astro.SunriseSunset(q.at, q.latitude, q.longitude)
	h.server.writeJSON(w, http.StatusOK, sunriseSunsetResponse{
		DateAndTime: q.at,
		Latitude:    q.latitude,
		Longitude:   q.longitude,
		Sunrise:     sunrise,
		Sunset:      sunset,
	})
}

type kattamDTO struct {
	Order        int                 `json:"order"`
	Rasi         int                 `json:"rasi"`
	RasiName     string              `json:"rasi_name"`
	Owner        string              `json:"owner"`
	OwnerName    string              `json:"owner_name"`
	House        int                 `json:"house"`
	HouseNumeral string              `json:"house_numeral"`
	IsAscendant  bool                `json:"is_ascendant"`
	AscLongitude float64             `json:"asc_longitude,omitempty"`
	Planets      []planetPositionDTO `json:"planets"`
}

func (s *Server) kattamDTOs(lang string, kattams []entities.Kattam) []kattamDTO {
	out := make([]kattamDTO, 0, len(kattams))
	for _, k := range kattams {
		out = append(out, kattamDTO{
			Order:        k.Order,
			Rasi:         int(k.Rasi),
			RasiName:     s.translator.T(lang, k.Rasi.Key(), nil),
			Owner:        k.Owner.Key(),
			OwnerName:    s.translator.T(lang, k.Owner.Key(), nil),
			House:        int(k.House),
			HouseNumeral: k.House.String(),
			IsAscendant:  k.IsAscendant,
			AscLongitude: k.AscLongitude,
			Planets:      s.planetPositionDTOs(lang, k.Planets),
		})
	}
	return out
}

type kattamsResponse struct {
	DateAndTime time.Time   `json:"dateandtime"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Ayanamsa    string      `json:"ayanamsa"`
	Kattams     []kattamDTO `json:"kattams"`
}

func (h *AstroHandler) Kattams(w http.ResponseWriter, r *http.Request) {
	q, err := parseAstroQuery(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	kattams := h.astro.Kattams(q.at, q.latitude, q.longitude, q.ayanamsa)
	h.server.writeJSON(w, http.StatusOK, kattamsResponse{
		DateAndTime: q.at,
		Latitude:    q.latitude,
		Longitude:   q.longitude,
		Ayanamsa:    q.ayanamsa,
		Kattams:     h.server.kattamDTOs(requestLanguage(r.Context()), kattams),
	})
}
