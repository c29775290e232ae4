package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agb-hr/attendance-backend-go/internal/domain/employee"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_number, full_name, COALESCE(shift_names, '{}'), created_at, updated_at
`

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByEmployeeNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_number = $1 AND deleted_at IS NULL
	`

	return scanEmployee(q.QueryRow(ctx, query, employeeNumber))
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var found employee.Employee
	err := row.Scan(
		&found.ID, &found.EmployeeNumber, &found.FullName, &found.ShiftNames,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return found, nil
}
