package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/db/models"
)

type ctxKeyUserID struct{}
type ctxKeyUser struct{}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(ctxKeyUserID{}).(uuid.UUID)
	return userID, ok
}

func WithCurrentUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, user)
}

func CurrentUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ctxKeyUser{}).(*models.User)
	return user, ok
}
