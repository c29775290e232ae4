package auth

import (
	"context"
	"time"
)

type EmployeeLoginRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeLogin, error)
	GetByToken(ctx context.Context, token string) (EmployeeLogin, error)
	Create(ctx context.Context, login EmployeeLogin) (EmployeeLogin, error)

	// RecordFailure stores the failure counter and the time of the last failure.
	RecordFailure(ctx context.Context, id string, attempts int, at time.Time) error

	// RotateToken replaces the login token only if it still equals current (nil matches
	// NULL), clears the failure counter and sets last_login_at. Returns ErrTokenConflict
	// when the token was changed by someone else.
	RotateToken(ctx context.Context, id string, current *string, next string, at time.Time) error

	// ClearToken logs the session out. Unknown tokens return ErrInvalidToken.
	ClearToken(ctx context.Context, token string) error

	// UpdatePassword stores a new hash and drops the session and the failure counter.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
