package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/auth"
	"github.com/agb-hr/attendance-backend-go/internal/domain/employee"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Transactor runs fn inside one database transaction carried by the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Policy is the login lockout policy.
type Policy struct {
	MaxAttempts int
	BlockWindow time.Duration
}

func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 5, BlockWindow: 5 * time.Minute}
}

var _ auth.AuthService = (*AuthServiceImpl)(nil)

type AuthServiceImpl struct {
	tx Transactor
	auth.EmployeeLoginRepository
	employee.EmployeeRepository
	jwt.Service

	policy Policy
	now    func() time.Time
}

func NewAuthService(tx Transactor, loginRepo auth.EmployeeLoginRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service, policy Policy, now func() time.Time) *AuthServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &AuthServiceImpl{
		tx:                      tx,
		EmployeeLoginRepository: loginRepo,
		EmployeeRepository:      employeeRepo,
		Service:                 jwtService,
		policy:                  policy,
		now:                     now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService. The first login of an employee sets the password.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmployeeNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	now := a.now()
	var (
		resp     auth.LoginResponse
		rejected bool
	)

	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		login, err := a.EmployeeLoginRepository.GetByEmployeeID(txCtx, emp.ID)
		if errors.Is(err, auth.ErrLoginNotFound) {
			hash, err := a.hashPassword(req.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			login, err = a.EmployeeLoginRepository.Create(txCtx, auth.EmployeeLogin{
				EmployeeID:   emp.ID,
				PasswordHash: hash,
			})
			if err != nil {
				return fmt.Errorf("failed to create employee login: %w", err)
			}
			slog.Info("Created employee login", "employee_id", emp.ID)
		} else if err != nil {
			return fmt.Errorf("failed to get employee login: %w", err)
		}

		if login.IsBlocked(now, a.policy.MaxAttempts, a.policy.BlockWindow) {
			return auth.ErrAccountLocked
		}

		if err := bcrypt.CompareHashAndPassword([]byte(login.PasswordHash), []byte(req.Password)); err != nil {
			attempts := login.NextFailedAttempts(now, a.policy.BlockWindow)
			if err := a.EmployeeLoginRepository.RecordFailure(txCtx, login.ID, attempts, now); err != nil {
				return fmt.Errorf("failed to record login failure: %w", err)
			}
			// Commit the counter, report the failure afterwards.
			rejected = true
			return nil
		}

		token := uuid.NewString()
		if err := a.EmployeeLoginRepository.RotateToken(txCtx, login.ID, login.LoginToken, token, now); err != nil {
			return err
		}

		accessToken, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, token)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		resp = auth.LoginResponse{
			AccessToken:          accessToken,
			AccessTokenExpiresIn: expiresAt,
			LoginToken:           token,
			EmployeeID:           emp.ID,
			EmployeeName:         emp.FullName,
			Message:              fmt.Sprintf("Welcome %s! You have logged in successfully.", emp.FullName),
		}
		return nil
	})

	if err != nil {
		return auth.LoginResponse{}, err
	}
	if rejected {
		slog.Warn("Employee login failed", "employee_id", emp.ID)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	slog.Info("Employee logged in", "employee_id", emp.ID, "employee_number", emp.EmployeeNumber)
	return resp, nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := a.EmployeeRepository.GetByEmployeeNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return err
	}

	hash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		login, err := a.EmployeeLoginRepository.GetByEmployeeID(txCtx, emp.ID)
		if errors.Is(err, auth.ErrLoginNotFound) {
			if _, err := a.EmployeeLoginRepository.Create(txCtx, auth.EmployeeLogin{EmployeeID: emp.ID, PasswordHash: hash}); err != nil {
				return fmt.Errorf("failed to create employee login: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get employee login: %w", err)
		}

		if err := a.EmployeeLoginRepository.UpdatePassword(txCtx, login.ID, hash); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		slog.Info("Employee password reset", "employee_id", emp.ID)
		return nil
	})
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, loginToken string) error {
	if loginToken == "" {
		return auth.ErrInvalidToken
	}
	return a.EmployeeLoginRepository.ClearToken(ctx, loginToken)
}

// ResolveToken implements auth.AuthService.
func (a *AuthServiceImpl) ResolveToken(ctx context.Context, loginToken string) (string, error) {
	if _, err := uuid.Parse(loginToken); err != nil {
		return "", auth.ErrInvalidToken
	}

	login, err := a.EmployeeLoginRepository.GetByToken(ctx, loginToken)
	if err != nil {
		if errors.Is(err, auth.ErrLoginNotFound) {
			return "", auth.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to resolve login token: %w", err)
	}
	return login.EmployeeID, nil
}
