package output

import (
	"context"

	"github.com/google/uuid"

	"ndastro/internal/domain/entities"
)

type ChartRepository interface {
	Create(ctx context.Context, chart *entities.Chart) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Chart, error)
	List(ctx context.Context, limit int) ([]entities.Chart, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
