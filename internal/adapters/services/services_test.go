package services_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"goproductos/internal/adapters/services"
	domain "goproductos/internal/domain/services"
)

func TestBcryptServiceHash(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBcrypt(bcrypt.MinCost)

	t.Run("success - hash verifies against original password", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "password123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "password123", hash)

		valid, err := svc.Verify(ctx, "password123", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("error - empty password", func(t *testing.T) {
		_, err := svc.Hash(ctx, "")
		require.ErrorIs(t, err, domain.ErrInvalidPassword)
	})

	t.Run("error - password below minimum length", func(t *testing.T) {
		_, err := svc.Hash(ctx, "short12")
		require.ErrorIs(t, err, domain.ErrInvalidPassword)
	})
}

func TestBcryptServiceVerify(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)

	t.Run("mismatched password is not an error", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "wrongpassword", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("error - empty arguments", func(t *testing.T) {
		_, err := svc.Verify(ctx, "", hash)
		require.ErrorIs(t, err, domain.ErrInvalidPassword)

		_, err = svc.Verify(ctx, "password123", "")
		require.ErrorIs(t, err, domain.ErrInvalidPassword)
	})

	t.Run("error - malformed hash", func(t *testing.T) {
		_, err := svc.Verify(ctx, "password123", "not-a-bcrypt-hash")
		require.Error(t, err)
	})
}

func TestOpaqueTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("token is hex encoded with configured length", func(t *testing.T) {
		svc := services.NewOpaqueToken(32)

		token, err := svc.GenerateToken(ctx)
		require.NoError(t, err)
		assert.Len(t, token, 64)

		_, err = hex.DecodeString(token)
		require.NoError(t, err)
	})

	t.Run("non-positive length falls back to default", func(t *testing.T) {
		svc := services.NewOpaqueToken(0)

		token, err := svc.GenerateToken(ctx)
		require.NoError(t, err)
		assert.Len(t, token, services.DefaultTokenBytes*2)
	})

	t.Run("consecutive tokens differ", func(t *testing.T) {
		svc := services.NewOpaqueToken(32)

		seen := make(map[string]struct{})
		for range 100 {
			token, err := svc.GenerateToken(ctx)
			require.NoError(t, err)

			_, duplicate := seen[token]
			require.False(t, duplicate)
			seen[token] = struct{}{}
		}
	})
}

func TestServiceFactory(t *testing.T) {
	factory := services.NewServiceFactory(bcrypt.MinCost, 32)

	require.NotNil(t, factory.PasswordService())
	require.NotNil(t, factory.TokenService())
	assert.Same(t, factory.PasswordService(), factory.PasswordService())
}
