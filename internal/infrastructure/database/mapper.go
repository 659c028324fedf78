package database

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"ndastro/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// scanChart maps one charts row to the domain entity. It works for both
// QueryRow and rows iteration.
func scanChart(row pgx.Row) (*entities.Chart, error) {
	var (
		chart  entities.Chart
		bornAt pgtype.Timestamptz
	)
	err := row.Scan(
		&chart.ID, &chart.Name, &chart.Place,
		&chart.Latitude, &chart.Longitude,
		&bornAt, &chart.Timezone, &chart.Ayanamsa, &chart.Language,
		&chart.CreatedAt, &chart.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	chart.BornAt = pgtypeTimestamptzToTime(bornAt)
	return &chart, nil
}
