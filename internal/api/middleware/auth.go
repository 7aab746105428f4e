// Package middleware holds the request middleware the router installs in
// front of the handlers.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"farmvora/internal/auth"
	"farmvora/internal/api/types"
	"farmvora/internal/domain"
)

// TokenVerifier turns a bearer token into an identity.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// AdminChecker answers whether a user holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// SuspensionChecker answers whether a user's account is suspended.
type SuspensionChecker interface {
	IsSuspended(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Authenticator resolves the request actor from its access token.
type Authenticator struct {
	verifier    TokenVerifier
	admins      AdminChecker
	suspensions SuspensionChecker
	logger      *slog.Logger
}

// NewAuthenticator builds the middleware. suspensions may be nil, in which
// case no suspension check is made.
func NewAuthenticator(verifier TokenVerifier, admins AdminChecker, suspensions SuspensionChecker, logger *slog.Logger) *Authenticator {
	return &Authenticator{verifier: verifier, admins: admins, suspensions: suspensions, logger: logger}
}

// Handler attaches the actor to the request context. Requests without a
// token continue anonymously; an invalid token is refused with 401 and a
// suspended account with 403.
// Browsers cannot set headers on websocket upgrades, so the token may
// also come from the access_token query parameter.
func (a *Authenticator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := auth.BearerToken(r.Header.Get("Authorization"))
		if !ok {
			token = r.URL.Query().Get("access_token")
		}
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := a.verifier.Verify(token)
		if err != nil {
			a.logger.Warn("Token validation failed", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if a.suspensions != nil {
			suspended, err := a.suspensions.IsSuspended(r.Context(), identity.UserID)
			if err != nil {
				a.logger.Error("Suspension lookup failed", "user_id", identity.UserID, "error", err)
				writeError(w, http.StatusServiceUnavailable, "unable to verify account status")
				return
			}
			if suspended {
				a.logger.Warn("Suspended account refused", "user_id", identity.UserID, "path", r.URL.Path)
				writeError(w, http.StatusForbidden, "account suspended")
				return
			}
		}

		admin, err := a.admins.IsAdmin(r.Context(), identity.UserID)
		if err != nil {
			// The request continues without admin rights.
			a.logger.Error("Admin lookup failed", "user_id", identity.UserID, "error", err)
			admin = false
		}

		actor := domain.Actor{UserID: identity.UserID, Email: identity.Email, Admin: admin}
		next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
	})
}

// RequireAuth refuses anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.ActorFrom(r.Context()).Authenticated() {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin refuses requests from anyone but an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := auth.ActorFrom(r.Context())
		switch {
		case !actor.Authenticated():
			writeError(w, http.StatusUnauthorized, "authentication required")
		case !actor.Admin:
			writeError(w, http.StatusForbidden, "admin access required")
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: message})
}
