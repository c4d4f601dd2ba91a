package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the signed payload carried by every bearer token: the
// user id in `sub` plus the registered expiry.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a uuid.
func (c *AccessTokenClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
