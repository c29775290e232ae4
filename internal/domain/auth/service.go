package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	Logout(ctx context.Context, loginToken string) error

	// ResolveToken returns the employee owning a live login token.
	ResolveToken(ctx context.Context, loginToken string) (string, error)
}
