package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

const (
	headerAuthorization = "Authorization"
	headerUserID        = "X-User-ID"
	headerRole          = "X-Role"
	bearerPrefix        = "Bearer "
)

// Identity returns middleware that resolves the caller of each request and
// stores it with user.WithIdentity. A bearer token in the Authorization
// header takes precedence; otherwise both X-User-ID and X-Role must be
// present and the role must be USER or ADMIN (any case). Requests without a
// usable identity get a 401 problem response.
//
// The request logger from logging.FromContext is enriched with user_id.
func Identity(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolveIdentity(r, verifier)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := user.WithIdentity(r.Context(), id)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(
				slog.String("user_id", id.UserID),
			))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveIdentity(r *http.Request, verifier ports.TokenVerifier) (user.Identity, error) {
	if auth := r.Header.Get(headerAuthorization); auth != "" {
		token, ok := strings.CutPrefix(auth, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return user.Identity{}, fmt.Errorf("authorization header is not a bearer token: %w", domain.ErrUnauthorized)
		}
		return verifier.Verify(strings.TrimSpace(token))
	}

	userID := strings.TrimSpace(r.Header.Get(headerUserID))
	rawRole := r.Header.Get(headerRole)
	if userID == "" || rawRole == "" {
		return user.Identity{}, fmt.Errorf("missing caller identity headers: %w", domain.ErrUnauthorized)
	}
	role, ok := user.ParseRole(rawRole)
	if !ok {
		return user.Identity{}, fmt.Errorf("unknown role %q: %w", rawRole, domain.ErrUnauthorized)
	}
	return user.Identity{UserID: userID, Role: role}, nil
}
