package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/api/middleware"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
)

// pathID parses the {id} route parameter as a UUID. The caller supplies
// the not-found message so a malformed id reads the same as a missing row.
func pathID(r *http.Request, notFoundMessage string) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, notFoundMessage)
	}
	return id, nil
}

// requestUserID reads the authenticated user id seeded by the auth guard.
func requestUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials")
	}
	return userID, nil
}
