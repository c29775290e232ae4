package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/auth"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// employeeLoginRepositoryImpl keeps login tokens hashed; EmployeeLogin.LoginToken carries
// the stored hash and is only compared, never handed to clients.
type employeeLoginRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeLoginRepository(db *database.DB) auth.EmployeeLoginRepository {
	return &employeeLoginRepositoryImpl{db: db}
}

// hashToken hashes the input string using SHA256 and encodes the result in base64.
func (r *employeeLoginRepositoryImpl) hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

const employeeLoginColumns = `
	id, employee_id, password_hash, login_token_hash, failed_attempts, last_failed_at,
	last_login_at, created_at, updated_at
`

func scanEmployeeLogin(row pgx.Row) (auth.EmployeeLogin, error) {
	var l auth.EmployeeLogin
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.PasswordHash, &l.LoginToken, &l.FailedAttempts, &l.LastFailedAt,
		&l.LastLoginAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.EmployeeLogin{}, auth.ErrLoginNotFound
		}
		return auth.EmployeeLogin{}, fmt.Errorf("failed to scan employee login: %w", err)
	}
	return l, nil
}

// GetByEmployeeID implements auth.EmployeeLoginRepository.
func (r *employeeLoginRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (auth.EmployeeLogin, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeLoginColumns + `
		FROM employee_logins
		WHERE employee_id = $1
		FOR UPDATE
	`

	return scanEmployeeLogin(q.QueryRow(ctx, query, employeeID))
}

// GetByToken implements auth.EmployeeLoginRepository.
func (r *employeeLoginRepositoryImpl) GetByToken(ctx context.Context, token string) (auth.EmployeeLogin, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeLoginColumns + `
		FROM employee_logins
		WHERE login_token_hash = $1
	`

	return scanEmployeeLogin(q.QueryRow(ctx, query, r.hashToken(token)))
}

// Create implements auth.EmployeeLoginRepository.
func (r *employeeLoginRepositoryImpl) Create(ctx context.Context, login auth.EmployeeLogin) (auth.EmployeeLogin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_logins (employee_id, password_hash, failed_attempts)
		VALUES ($1, $2, 0)
		RETURNING ` + employeeLoginColumns

	return scanEmployeeLogin(q.QueryRow(ctx, query, login.EmployeeID, login.PasswordHash))
}

// RecordFailure implements auth.EmployeeLoginRepository.
func (r *employeeLoginRepositoryImpl) RecordFailure(ctx context.Context, id string, attempts int, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_logins
		SET failed_attempts = $2, last_failed_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, attempts, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrLoginNotFound
	}
	return nil
}

// RotateToken implements auth.EmployeeLoginRepository.
func (r *employeeLoginRepositoryImpl) RotateToken(ctx context.Context, id string, current *string, next string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_logins
		SET login_token_hash = $3, failed_attempts = 0, last_failed_at = NULL,
			last_login_at = $4, updated_at = NOW()
		WHERE id = $1 AND login_token_hash IS NOT DISTINCT FROM $2
	`

	tag, err := q.Exec(ctx, query, id, current, r.hashToken(next), at.UTC())
	if err != nil {
		return fmt.Errorf("failed to rotate login token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrTokenConflict
	}
	return nil
}

// ClearToken implements auth.EmployeeLoginRepository.
func (r *employeeLoginRepositoryImpl) ClearToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_logins
		SET login_token_hash = NULL, updated_at = NOW()
		WHERE login_token_hash = $1
	`

	tag, err := q.Exec(ctx, query, r.hashToken(token))
	if err != nil {
		return fmt.Errorf("failed to clear login token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrInvalidToken
	}
	return nil
}

// UpdatePassword implements auth.EmployeeLoginRepository.
func (r *employeeLoginRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_logins
		SET password_hash = $2, login_token_hash = NULL, failed_attempts = 0,
			last_failed_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrLoginNotFound
	}
	return nil
}
