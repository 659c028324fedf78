package input

import (
	"context"

	"github.com/google/uuid"

	"ndastro/internal/domain/entities"
)

type ChartUseCase interface {
	CreateChart(ctx context.Context, chart *entities.Chart) error
	GetChart(ctx context.Context, id uuid.UUID) (*entities.Chart, error)
	ListCharts(ctx context.Context, limit int) ([]entities.Chart, error)
	DeleteChart(ctx context.Context, id uuid.UUID) error

	// ChartKattams computes the kattam squares for a saved chart's birth
	// details and returns the chart alongside them.
	ChartKattams(ctx context.Context, id uuid.UUID) (*entities.Chart, []entities.Kattam, error)
}
