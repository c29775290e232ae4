package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListByEmployee implements attendance.PunchRepository.
func (p *punchRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, check_in, check_out, COALESCE(late_display, '')
		FROM attendances
		WHERE employee_id = $1
		  AND ((check_in BETWEEN $2 AND $3) OR (check_out BETWEEN $2 AND $3))
		ORDER BY check_in ASC NULLS LAST, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	return scanPunches(rows)
}

// ListByCheckIn implements attendance.PunchRepository.
func (p *punchRepositoryImpl) ListByCheckIn(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, check_in, check_out, COALESCE(late_display, '')
		FROM attendances
		WHERE employee_id = $1
		  AND check_in BETWEEN $2 AND $3
		ORDER BY check_in ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by check-in: %w", err)
	}
	return scanPunches(rows)
}

func scanPunches(rows pgx.Rows) ([]attendance.Punch, error) {
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.CheckIn, &p.CheckOut, &p.LateDisplay); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return punches, nil
}
