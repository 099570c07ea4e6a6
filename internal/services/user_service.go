package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"github.com/olimjonbek/savdo-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPhoneRequired = errors.New("the phone number field must be set")
	ErrUserNotFound  = errors.New("user not found")
)

// UserService manages identity records keyed by phone number.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create stores a new identity with a bcrypt-hashed password. The
// phone number must already be normalized to digits.
func (s *UserService) Create(ctx context.Context, phone, password string, extra *models.User) (*models.User, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		PhoneNumber: phone,
		Password:    string(hash),
		Role:        models.RoleUser,
	}
	if extra != nil {
		user.FirstName = extra.FirstName
		user.LastName = extra.LastName
		user.Email = extra.Email
		if extra.Role != "" {
			user.Role = extra.Role
		}
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// CreateSuperuser creates an identity with elevated privileges.
func (s *UserService) CreateSuperuser(ctx context.Context, phone, password string) (*models.User, error) {
	user, err := s.Create(ctx, phone, password, &models.User{Role: models.RoleAdmin})
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to elevate user: %w", err)
	}
	return user, nil
}

// Save persists changes to an existing identity.
func (s *UserService) Save(ctx context.Context, user *models.User) error {
	return s.users.Update(ctx, user)
}

// FindByID returns the identity by primary key or ErrUserNotFound.
func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindByPhone returns the matching identity or ErrUserNotFound.
func (s *UserService) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
