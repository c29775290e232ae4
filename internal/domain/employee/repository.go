package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeNumber(ctx context.Context, employeeNumber string) (Employee, error)
}
