package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/security"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := security.NewTokenManager("unit-test-secret-0123456789abcdefghij")

	t.Run("Round trip", func(t *testing.T) {
		token, err := manager.Generate(42, domain.UserRoleEmployee, time.Hour)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := manager.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, domain.UserRoleEmployee, claims.Role)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := manager.Generate(42, domain.UserRoleCustomer, -time.Minute)
		assert.NoError(t, err)

		claims, err := manager.Validate(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, security.ErrExpiredToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := security.NewTokenManager("a-completely-different-secret-value-here")
		token, err := other.Generate(42, domain.UserRoleCustomer, time.Hour)
		assert.NoError(t, err)

		claims, err := manager.Validate(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Garbage token", func(t *testing.T) {
		claims, err := manager.Validate("not.a.token")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
