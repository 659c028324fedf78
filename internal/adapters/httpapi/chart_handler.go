package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ndastro/internal/domain"
	"ndastro/internal/domain/entities"
	"ndastro/internal/ports/input"
)

// ChartHandler serves the saved birth chart CRUD.
type ChartHandler struct {
	server *Server
	charts input.ChartUseCase
}

type chartRequest struct {
	Name      string    `json:"name"`
	Place     string    `json:"place"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	BornAt    time.Time `json:"born_at"`
	Timezone  string    `json:"timezone"`
	Ayanamsa  string    `json:"ayanamsa"`
	Language  string    `json:"language"`
}

type chartDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Place     string    `json:"place"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	BornAt    time.Time `json:"born_at"`
	Timezone  string    `json:"timezone"`
	Ayanamsa  string    `json:"ayanamsa"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func chartToDTO(chart *entities.Chart) chartDTO {
	return chartDTO{
		ID:        chart.ID,
		Name:      chart.Name,
		Place:     chart.Place,
		Latitude:  chart.Latitude,
		Longitude: chart.Longitude,
		BornAt:    chart.BornAt,
		Timezone:  chart.Timezone,
		Ayanamsa:  chart.Ayanamsa,
		Language:  chart.Language,
		CreatedAt: chart.CreatedAt,
		UpdatedAt: chart.UpdatedAt,
	}
}

func (h *ChartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.server.writeError(w, r, domain.ErrInvalidPayload)
		return
	}

	chart := &entities.Chart{
		Name:      req.Name,
		Place:     req.Place,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		BornAt:    req.BornAt,
		Timezone:  req.Timezone,
		Ayanamsa:  req.Ayanamsa,
		Language:  req.Language,
	}
	if err := h.charts.CreateChart(r.Context(), chart); err != nil {
		h.server.writeError(w, r, err)
		return
	}
	h.server.writeJSON(w, http.StatusCreated, chartToDTO(chart))
}

func (h *ChartHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	charts, err := h.charts.ListCharts(r.Context(), limit)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	dtos := make([]chartDTO, 0, len(charts))
	for i := range charts {
		dtos = append(dtos, chartToDTO(&charts[i]))
	}
	h.server.writeJSON(w, http.StatusOK, map[string]any{"charts": dtos})
}

func (h *ChartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := chartID(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	chart, err := h.charts.GetChart(r.Context(), id)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	h.server.writeJSON(w, http.StatusOK, chartToDTO(chart))
}

func (h *ChartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := chartID(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	if err := h.charts.DeleteChart(r.Context(), id); err != nil {
		h.server.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type chartKattamsResponse struct {
	Chart   chartDTO    `json:"chart"`
	Kattams []kattamDTO `json:"kattams"`
}

func (h *ChartHandler) Kattams(w http.ResponseWriter, r *http.Request) {
	id, err := chartID(r)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}
	chart, kattams, err := h.charts.ChartKattams(r.Context(), id)
	if err != nil {
		h.server.writeError(w, r, err)
		return
	}

	// A chart carries its owner's label language; it applies when the
	// request itself expressed no preference.
	lang := requestLanguage(r.Context())
	if r.URL.Query().Get("lang") == "" && r.Header.Get("Accept-Language") == "" && chart.Language != "" {
		lang = chart.Language
		w.Header().Set("Content-Language", lang)
	}

	h.server.writeJSON(w, http.StatusOK, chartKattamsResponse{
		Chart:   chartToDTO(chart),
		Kattams: h.server.kattamDTOs(lang, kattams),
	})
}

// chartID parses the path id; a malformed one reads the same as a missing
// chart.
func chartID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.ErrChartNotFound
	}
	return id, nil
}
