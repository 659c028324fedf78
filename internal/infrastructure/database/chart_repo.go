package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ndastro/internal/domain"
	"ndastro/internal/domain/entities"
	"ndastro/internal/ports/output"
)

var _ output.ChartRepository = (*ChartRepository)(nil)

type ChartRepository struct {
	pool *pgxpool.Pool
}

func NewChartRepository(pool *pgxpool.Pool) *ChartRepository {
	return &ChartRepository{pool: pool}
}

const chartColumns = "id, name, place, latitude, longitude, born_at, tz, ayanamsa, lang, created_at, updated_at"

func (r *ChartRepository) Create(ctx context.Context, chart *entities.Chart) error {
	if chart.ID == uuid.Nil {
		chart.ID = uuid.New()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO charts (id, name, place, latitude, longitude, born_at, tz, ayanamsa, lang)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		chart.ID, chart.Name, chart.Place, chart.Latitude, chart.Longitude,
		chart.BornAt, chart.Timezone, chart.Ayanamsa, chart.Language,
	)
	if err := row.Scan(&chart.CreatedAt, &chart.UpdatedAt); err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	return nil
}

func (r *ChartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Chart, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+chartColumns+" FROM charts WHERE id = $1", id)
	chart, err := scanChart(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChartNotFound
		}
		return nil, fmt.Errorf("get chart by id: %w", err)
	}
	return chart, nil
}

func (r *ChartRepository) List(ctx context.Context, limit int) ([]entities.Chart, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+chartColumns+" FROM charts ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("list charts: %w", err)
	}
	defer rows.Close()

	var out []entities.Chart
	for rows.Next() {
		chart, err := scanChart(rows)
		if err != nil {
			return nil, fmt.Errorf("list charts: %w", err)
		}
		out = append(out, *chart)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list charts: %w", err)
	}
	return out, nil
}

func (r *ChartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM charts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete chart: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrChartNotFound
	}
	return nil
}
