package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogger/models"
	"blogger/repositories"
	"blogger/services"
)

// UserLookup loads the account behind a token subject.
type UserLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Gate turns an access token into an Identity.
type Gate struct {
	tokens *JWTManager
	users  UserLookup
}

func NewGate(tokens *JWTManager, users UserLookup) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Resolve verifies token and loads its user. Every failure is a 401
// services.Error; store failures other than not-found are 500.
func (g *Gate) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, services.NewUnauthorizedError("Unauthorized request", nil)
	}

	sub, err := g.tokens.Parse(token)
	if err != nil {
		return models.Identity{}, services.NewUnauthorizedError("Invalid Access Token", err)
	}

	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return models.Identity{}, services.NewUnauthorizedError("Invalid Access Token", fmt.Errorf("sub %q: %w", sub, err))
	}

	user, err := g.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Identity{}, services.NewUnauthorizedError("Invalid Access Token", err)
		}
		return models.Identity{}, services.NewInternalError("Something went wrong while verifying access token", err)
	}
	return user.Identity(), nil
}
