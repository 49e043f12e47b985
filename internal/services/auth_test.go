package services

import (
	"testing"

	"ticket-commerce-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key"

func registerTestUser(t *testing.T, service *AuthService) *models.User {
	t.Helper()
	user, err := service.Register(&models.UserCreateRequest{
		Account:  "alice01",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	return user
}

func TestAuthService_Register(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), testJWTSecret)

		user := registerTestUser(t, service)
		assert.Equal(t, "alice01", user.Account)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "s3cret", user.PasswordHash)
	})

	t.Run("invalid input is rejected before hashing", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), testJWTSecret)

		_, err := service.Register(&models.UserCreateRequest{
			Account:  "a",
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("duplicate account", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), testJWTSecret)
		registerTestUser(t, service)

		_, err := service.Register(&models.UserCreateRequest{
			Account:  "alice01",
			Email:    "other@example.com",
			Password: "s3cret",
		})
		assert.ErrorIs(t, err, models.ErrDuplicateEntry)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials issue a working token", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), testJWTSecret)
		registered := registerTestUser(t, service)

		user, token, err := service.Login("alice01", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		require.NotEmpty(t, token)

		validated, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, validated.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), testJWTSecret)
		registerTestUser(t, service)

		_, _, err := service.Login("alice01", "wrong")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown account", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), testJWTSecret)

		_, _, err := service.Login("nobody", "s3cret")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}

func TestAuthService_Logout(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), testJWTSecret)
	registered := registerTestUser(t, service)

	_, token, err := service.Login("alice01", "s3cret")
	require.NoError(t, err)

	require.NoError(t, service.Logout(registered.ID, token))

	// The signature still verifies, but the token is no longer stored
	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthService_Extend(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), testJWTSecret)
	registered := registerTestUser(t, service)

	_, token, err := service.Login("alice01", "s3cret")
	require.NoError(t, err)

	newToken, err := service.Extend(registered.ID, token)
	require.NoError(t, err)
	require.NotEmpty(t, newToken)

	// The fresh token works, the one it replaced is revoked
	validated, err := service.ValidateToken(newToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, validated.ID)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	// Extending with a revoked token fails
	_, err = service.Extend(registered.ID, token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), testJWTSecret)

		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		repo := newFakeUserRepo()
		service := NewAuthService(repo, testJWTSecret)
		registerTestUser(t, service)

		other := NewAuthService(repo, "another-secret")
		_, token, err := other.Login("alice01", "s3cret")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}
