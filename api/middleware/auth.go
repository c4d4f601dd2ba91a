package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/storefront-labs/storefront-backend/api/responses"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
	"github.com/storefront-labs/storefront-backend/pkg/logger"
)

// UserResolver exchanges a bearer token for the user it identifies.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*models.User, error)
}

// RequireUser guards a route group behind bearer authentication. The
// resolved user and its identifier are stored on the request context.
func RequireUser(resolver UserResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := bearerToken(r)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			user, err := resolver.ResolveUser(ctx, token)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			ctx = WithUserID(ctx, user.ID)
			ctx = WithCurrentUser(ctx, user)
			ctx = logg.WithUserID(ctx, user.ID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials")
	}

	return token, nil
}
