package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeacademy/internal/models/db_models"
	"tradeacademy/internal/models/request_models"
	"tradeacademy/pkg/limiter"
	"tradeacademy/pkg/utils"
)

type fakeAdminRepo struct {
	admin *db_models.AdminUser
	err   error
}

func (f *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.admin != nil && f.admin.Username == username {
		return f.admin, nil
	}
	return nil, nil
}

func newAccountFixture(t *testing.T) (AccountServiceInterface, limiter.AttemptStore) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := utils.HashPassword("Admin123!")
	require.NoError(t, err)

	repo := &fakeAdminRepo{admin: &db_models.AdminUser{
		ID:           1,
		Username:     "admin",
		PasswordHash: hash,
		Role:         "admin",
	}}
	attempts := limiter.NewMemoryAttemptStore()
	return NewAccountService(repo, attempts), attempts
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAccountFixture(t)

	result, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "admin",
		Password: "Admin123!",
	}, "10.0.0.1")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, uint(1), result.User.ID)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, "admin", result.User.Role)

	claims, err := utils.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAccountFixture(t)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "admin",
		Password: "wrong",
	}, "10.0.0.1")

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc, _ := newAccountFixture(t)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	}, "10.0.0.1")

	// Unknown username must be indistinguishable from a wrong password.
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	svc, _ := newAccountFixture(t)
	req := request_models.LoginRequest{Username: "admin", Password: "wrong"}

	for i := 0; i < limiter.MaxLoginAttempts; i++ {
		_, err := svc.Login(context.Background(), req, "10.0.0.1")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	}

	_, err := svc.Login(context.Background(), req, "10.0.0.1")
	assert.ErrorIs(t, err, utils.ErrLoginLocked)

	// Lockout is keyed by username and IP; a different client is unaffected.
	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Username: "admin",
		Password: "Admin123!",
	}, "10.0.0.2")
	assert.NoError(t, err)
}

func TestLoginSuccessClearsAttempts(t *testing.T) {
	svc, attempts := newAccountFixture(t)

	for i := 0; i < limiter.MaxLoginAttempts-1; i++ {
		_, _ = svc.Login(context.Background(), request_models.LoginRequest{
			Username: "admin",
			Password: "wrong",
		}, "10.0.0.1")
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "admin",
		Password: "Admin123!",
	}, "10.0.0.1")
	require.NoError(t, err)

	blocked, err := attempts.IsBlocked(context.Background(), "admin|10.0.0.1")
	require.NoError(t, err)
	assert.False(t, blocked)
}
