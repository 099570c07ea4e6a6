package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/olimjonbek/savdo-backend/internal/config"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"github.com/olimjonbek/savdo-backend/internal/repository"
	"github.com/olimjonbek/savdo-backend/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired refresh token")
)

// AuthService decides, per login submission, whether to create a new
// account, authenticate an existing one, or reject.
type AuthService struct {
	users  *UserService
	tokens repository.RefreshTokenRepository
	cfg    *config.Config
}

func NewAuthService(users *UserService, tokens repository.RefreshTokenRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, tokens: tokens, cfg: cfg}
}

// Login runs one login submission to a terminal state. A phone number
// shorter than ten digits is rejected before any lookup. An unknown
// phone number registers a new account on the spot and logs the caller
// in: there is no proof of phone ownership before account creation,
// which is the product's chosen trade-off for a one-field signup.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	phone := validate.NormalizePhone(req.PhoneNumber)
	if !validate.PhoneValid(phone) {
		return nil, ErrInvalidPhone
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}

		user, err = s.users.Create(ctx, phone, req.Password, nil)
		if err != nil {
			return nil, err
		}
		slog.Info("auto-registered account at login", "user_id", user.ID.String())

		resp, err := s.generateTokenPair(ctx, user)
		if err != nil {
			return nil, err
		}
		resp.Registered = true
		resp.Redirect = "/"
		return resp, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	resp, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	resp.Redirect = "/"
	if req.Next != "" {
		resp.Redirect = req.Next
	}
	return resp, nil
}

// Refresh rotates a refresh token: the presented token is revoked and
// a fresh pair is issued.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*dto.AuthResponse, error) {
	stored, err := s.tokens.FindActive(ctx, hashToken(rawToken))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if err := s.tokens.Revoke(ctx, stored.TokenHash); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	resp, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	resp.Redirect = "/"
	return resp, nil
}

// Logout revokes the refresh token; an unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, hashToken(rawToken))
}

func (s *AuthService) generateTokenPair(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:          user.ID,
			PhoneNumber: user.PhoneNumber,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Email:       user.Email,
			Role:        user.Role,
		},
	}, nil
}

// GenerateAccessToken signs a short-lived session token for user.
func (s *AuthService) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID.String(),
		"phone_number": user.PhoneNumber,
		"role":         user.Role,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(ctx context.Context, user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.tokens.Create(ctx, &record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
