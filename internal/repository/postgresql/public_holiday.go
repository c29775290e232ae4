package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/database"
)

type publicHolidayRepositoryImpl struct {
	db *database.DB
}

func NewPublicHolidayRepository(db *database.DB) holiday.PublicHolidayRepository {
	return &publicHolidayRepositoryImpl{db: db}
}

// ListPublic implements holiday.PublicHolidayRepository.
func (h *publicHolidayRepositoryImpl) ListPublic(ctx context.Context, from, to time.Time) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, name, date_from, date_to, resource_id
		FROM public_holidays
		WHERE resource_id IS NULL
		  AND date_from <= $2
		  AND date_to >= $1
		ORDER BY date_from ASC, id ASC
	`

	// One day of slack on the lower bound; Covers does the exact match in the target location.
	rows, err := q.Query(ctx, query, from.UTC().Add(-24*time.Hour), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var ph holiday.PublicHoliday
		if err := rows.Scan(&ph.ID, &ph.Name, &ph.DateFrom, &ph.DateTo, &ph.ResourceID); err != nil {
			return nil, fmt.Errorf("failed to scan public holiday: %w", err)
		}
		holidays = append(holidays, ph)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate public holidays: %w", err)
	}

	return holidays, nil
}
