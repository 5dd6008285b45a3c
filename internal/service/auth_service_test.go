package service

import (
	"testing"
	"time"

	"thaimusic_backend/internal/config"
	"thaimusic_backend/internal/repository"
	"thaimusic_backend/internal/testutil"
	"thaimusic_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg, nil, nil, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("somchai@example.com", "secret123", "somchai")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register("somchai@example.com", "other", "other")
		assert.ErrorIs(t, err, util.ErrEmailRegistered)
	})

	t.Run("LoginSuccess", func(t *testing.T) {
		token, logged, err := svc.Login("somchai@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, logged.ID)

		claims, err := util.ParseJWT(token, "test-secret-test-secret-test-secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login("somchai@example.com", "wrong")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, err := svc.Login("nobody@example.com", "secret123")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("malee@example.com", "secret123", "malee")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, "malee_r")
	require.NoError(t, err)
	assert.Equal(t, "malee_r", updated.Username)
}
