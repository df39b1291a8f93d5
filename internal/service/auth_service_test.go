package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"spendguard/internal/dto"
	"spendguard/internal/models"
	"spendguard/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("no rows in result set")
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("no rows in result set")
}

func newAuthService(users *fakeUserStore) *AuthService {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwtManager, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)
	require.Len(t, users.users, 1)
	// Stored password is hashed.
	assert.NotEqual(t, "password123", users.users[0].Password)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password456",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "nope",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(&fakeUserStore{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenInvalid(t *testing.T) {
	svc := newAuthService(&fakeUserStore{})

	_, err := svc.RefreshToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
