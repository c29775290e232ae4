package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agb-hr/attendance-backend-go/internal/domain/auth"
	"github.com/agb-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/agb-hr/attendance-backend-go/internal/handler/http/response"
)

const maxBodyBytes = 1 << 20

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

type validatable interface {
	Validate() error
}

// decodeBody reads a JSON body into req and validates it. On failure the response is
// already written and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, op string, req validatable) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(req); err != nil {
		slog.Warn(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return false
	}
	return true
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !decodeBody(w, r, "Login", &req) {
		return
	}

	resp, err := a.authService.Login(r.Context(), req)
	if err != nil {
		slog.Warn("Login rejected", "employee_number", req.EmployeeNumber, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, resp.Message, resp)
}

// ResetPassword implements AuthHandler.
func (a *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if !decodeBody(w, r, "ResetPassword", &req) {
		return
	}

	if err := a.authService.ResetPassword(r.Context(), req); err != nil {
		slog.Error("ResetPassword service error", "employee_number", req.EmployeeNumber, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password has been reset successfully", nil)
}

// Logout implements AuthHandler. It ends the session the request authenticated with.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	loginToken, ok := middleware.LoginTokenFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), loginToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
