package usecase_test

import (
	"context"
	"testing"

	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/usecase"
	"theatre-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Auth: utils.AuthConfig{SessionExpiryHours: 24},
	}
}

func TestRegister_OpensSession(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "groundling",
		Email:    "groundling@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "groundling", resp.User.Username)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.ExpiresAt)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Username: "groundling",
		Email:    "groundling@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	resp, err := service.Register(ctx, &request.RegisterRequest{
		Username: "other",
		Email:    "groundling@example.com",
		Password: "secret-password",
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Username: "groundling",
		Email:    "groundling@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	resp, err := service.Login(ctx, &request.LoginRequest{
		Email:    "groundling@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Username: "groundling",
		Email:    "groundling@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	resp, err := service.Login(ctx, &request.LoginRequest{
		Email:    "groundling@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLogout_RevokesSession(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	resp, err := service.Register(ctx, &request.RegisterRequest{
		Username: "groundling",
		Email:    "groundling@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, resp.Token))

	session, err := repo.Session.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
