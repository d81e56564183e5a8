package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogger/models"
	"blogger/repositories/memory"
	"blogger/services"
)

func TestGateResolve(t *testing.T) {
	users := memory.NewUserStore()
	alice := users.Add(models.User{Username: "alice", Email: "alice@example.com"})
	tokens := NewJWTManager("gate-secret", "blogger", time.Hour)
	gate := NewGate(tokens, users)
	ctx := context.Background()

	good, err := tokens.Sign(alice.ID.Hex())
	require.NoError(t, err)

	id, err := gate.Resolve(ctx, good)
	require.NoError(t, err)
	assert.Equal(t, alice.Identity(), id)

	_, err = gate.Resolve(ctx, "")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.EqualError(t, err, "Unauthorized request")

	_, err = gate.Resolve(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Equal(t, 401, services.StatusCode(err))

	badSub, err := tokens.Sign("not-an-object-id")
	require.NoError(t, err)
	_, err = gate.Resolve(ctx, badSub)
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	ghost, err := tokens.Sign(primitive.NewObjectID().Hex())
	require.NoError(t, err)
	_, err = gate.Resolve(ctx, ghost)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}
