package application

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ndastro/internal/domain"
	"ndastro/internal/domain/entities"
	"ndastro/internal/ports/input"
	"ndastro/internal/ports/output"
	"ndastro/pkg/tz"
)

var _ input.ChartUseCase = (*ChartService)(nil)

const defaultListLimit = 50

// ChartService manages saved birth details and computes kattams for them.
type ChartService struct {
	charts     output.ChartRepository
	astro      input.AstroUseCase
	translator output.Translator
}

func NewChartService(charts output.ChartRepository, astro input.AstroUseCase, translator output.Translator) *ChartService {
	return &ChartService{
		charts:     charts,
		astro:      astro,
		translator: translator,
	}
}

func (s *ChartService) CreateChart(ctx context.Context, chart *entities.Chart) error {
	if strings.TrimSpace(chart.Name) == "" {
		return domain.ErrNameRequired
	}
	if chart.BornAt.IsZero() {
		return domain.ErrBirthTimeRequired
	}
	if chart.Latitude < -90 || chart.Latitude > 90 || chart.Longitude < -180 || chart.Longitude > 180 {
		return domain.ErrInvalidCoordinates
	}
	if chart.Timezone == "" {
		chart.Timezone = "UTC"
	}
	if _, err := tz.Resolve(chart.Timezone); err != nil {
		return domain.ErrInvalidTimezone
	}
	if chart.Ayanamsa == "" {
		chart.Ayanamsa = "lahiri"
	}
	// The stored language is normalized; an unsupported preference degrades
	// to the default rather than failing the save.
	chart.Language, _ = s.translator.Normalize(chart.Language)
	return s.charts.Create(ctx, chart)
}

func (s *ChartService) GetChart(ctx context.Context, id uuid.UUID) (*entities.Chart, error) {
	return s.charts.FindByID(ctx, id)
}

func (s *ChartService) ListCharts(ctx context.Context, limit int) ([]entities.Chart, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.charts.List(ctx, limit)
}

func (s *ChartService) DeleteChart(ctx context.Context, id uuid.UUID) error {
	return s.charts.Delete(ctx, id)
}

// ChartKattams computes the kattam squares for a saved chart's birth
// details.
func (s *ChartService) ChartKattams(ctx context.Context, id uuid.UUID) (*entities.Chart, []entities.Kattam, error) {
	chart, err := s.charts.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	kattams := s.astro.Kattams(chart.BornAt, chart.Latitude, chart.Longitude, chart.Ayanamsa)
	return chart, kattams, nil
}
