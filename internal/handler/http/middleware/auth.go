package middleware

import (
	"context"
	"net/http"

	"github.com/agb-hr/attendance-backend-go/internal/domain/auth"
	"github.com/agb-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// HeaderEmployeeToken carries a raw login token for clients that do not hold a JWT.
const HeaderEmployeeToken = "X-Employee-Token"

type contextKey struct{ name string }

var (
	employeeIDKey = &contextKey{"employee_id"}
	loginTokenKey = &contextKey{"login_token"}
)

// TokenResolver maps a live login token to its employee.
type TokenResolver interface {
	ResolveToken(ctx context.Context, loginToken string) (string, error)
}

// AuthRequired authenticates either an X-Employee-Token header or a verified
// access JWT whose session is still live. The employee is put on the context.
func AuthRequired(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var claimedEmployee string
			loginToken := r.Header.Get(HeaderEmployeeToken)
			if loginToken == "" {
				token, claims, err := jwtauth.FromContext(ctx)
				if err != nil || token == nil {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}

				tokenType, ok := claims[jwt.ClaimType].(string)
				if !ok || tokenType != jwt.TypeAccess {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}

				sid, ok := claims[jwt.ClaimSessionID].(string)
				if !ok || sid == "" {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				claimedEmployee, _ = claims[jwt.ClaimEmployeeID].(string)
				if claimedEmployee == "" {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				loginToken = sid
			}

			employeeID, err := resolver.ResolveToken(ctx, loginToken)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			// A JWT must belong to the session it names.
			if claimedEmployee != "" && claimedEmployee != employeeID {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx = context.WithValue(ctx, employeeIDKey, employeeID)
			ctx = context.WithValue(ctx, loginTokenKey, loginToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeIDFromContext returns the authenticated employee.
func EmployeeIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(employeeIDKey).(string)
	return id, ok && id != ""
}

// LoginTokenFromContext returns the login token the request authenticated with.
func LoginTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(loginTokenKey).(string)
	return token, ok && token != ""
}
