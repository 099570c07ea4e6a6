package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/olimjonbek/savdo-backend/internal/config"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	users := &fakeUserRepo{}
	tokens := &fakeTokenRepo{}
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthService(NewUserService(users), tokens, cfg), users, tokens
}

func TestLoginRejectsShortPhone(t *testing.T) {
	svc, users, tokens := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "+998 (90) 123",
		Password:    "secret",
	})

	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Empty(t, users.users, "no account may be created")
	assert.Empty(t, tokens.tokens, "no session may be established")
}

func TestLoginAutoRegistersUnknownPhone(t *testing.T) {
	svc, users, tokens := newAuthFixture()

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "+998 (90) 123-45-67",
		Password:    "secret",
	})

	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.Equal(t, "/", resp.Redirect)
	assert.Equal(t, "998901234567", resp.User.PhoneNumber)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.Len(t, users.users, 1)
	assert.NotEqual(t, "secret", users.users[0].Password, "password must be hashed")
	assert.Len(t, tokens.tokens, 1)
}

func TestLoginAuthenticatesKnownPhone(t *testing.T) {
	svc, _, _ := newAuthFixture()

	// Register on first submission, authenticate on the second.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "998901234567",
		Password:    "secret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "998 90 123 45 67",
		Password:    "secret",
		Next:        "/market",
	})

	require.NoError(t, err)
	assert.False(t, resp.Registered)
	assert.Equal(t, "/market", resp.Redirect)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc, _, tokens := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "998901234567",
		Password:    "secret",
	})
	require.NoError(t, err)
	issued := len(tokens.tokens)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "998901234567",
		Password:    "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Len(t, tokens.tokens, issued, "no session on bad password")
}

func TestAccessTokenClaims(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "998901234567",
		Password:    "secret",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "998901234567", claims["phone_number"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	first, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "998901234567",
		Password:    "secret",
	})
	require.NoError(t, err)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The presented token is revoked and cannot be replayed.
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "998901234567",
		Password:    "secret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.RefreshToken))

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
