package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"blogger/models"
)

const (
	AccessTokenCookie = "accessToken"
	identityKey       = "identity"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// ExtractAccessToken prefers the accessToken cookie and falls back to the
// Authorization header.
func ExtractAccessToken(c *gin.Context) (string, error) {
	if v, err := c.Cookie(AccessTokenCookie); err == nil && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return ExtractBearerToken(c)
}

// SetIdentity stores the resolved principal on the request.
func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the principal stored by SetIdentity.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}
