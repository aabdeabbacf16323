package http

import (
	"context"
	"net/http"
	"strings"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/security"
)

// Actor is the authenticated caller, resolved by the auth middleware
// before any core operation runs. Handlers pass its fields explicitly;
// the core never reads a global security context.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

func (a Actor) IsStaff() bool {
	return a.Role == domain.UserRoleEmployee || a.Role == domain.UserRoleAdmin
}

type actorKey struct{}

// ActorFromContext returns the authenticated actor, if any.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}

// AuthMiddleware verifies the bearer token and attaches the actor to the
// request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			actor := Actor{UserID: claims.UserID, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
		})
	}
}
