package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSecret = errors.New("JWT_SECRET (or ACCESS_TOKEN_SECRET) is required")

// JWTManager signs and verifies HS256 access tokens with a single shared secret.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManagerFromEnv builds a JWTManager from the environment.
//
// - JWT_SECRET: HS256 secret; ACCESS_TOKEN_SECRET is read when it is unset
// - JWT_ISSUER: iss claim (optional, default "blogger")
// - JWT_TTL: token lifetime as a Go duration (optional, default 24h)
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = os.Getenv("ACCESS_TOKEN_SECRET")
	}
	if secret == "" {
		return nil, ErrMissingSecret
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "blogger"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid JWT_TTL %q", raw)
		}
		ttl = d
	}

	return NewJWTManager(secret, issuer, ttl), nil
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Sign issues a token whose sub is the user's ObjectID hex.
func (m *JWTManager) Sign(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": m.issuer,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies the signature and expiry and returns the user id. Tokens
// without sub fall back to an _id claim.
func (m *JWTManager) Parse(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		sub, _ = claims["_id"].(string)
	}
	if sub == "" {
		return "", fmt.Errorf("token missing sub claim")
	}
	return sub, nil
}
