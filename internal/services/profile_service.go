package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/validate"
)

// ProfileService applies profile-form updates to the current user.
type ProfileService struct {
	users *UserService
}

func NewProfileService(users *UserService) *ProfileService {
	return &ProfileService{users: users}
}

// Update validates the profile form and persists the result. The photo
// is the one required field; the phone number, when given, is stored
// digit-only.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) (*dto.UserResponse, validate.FieldErrors, error) {
	fieldErrs := validate.FieldErrors{}
	if strings.TrimSpace(req.Photo) == "" {
		fieldErrs.Add("photo", "Photo is required")
	}

	phone := validate.NormalizePhone(req.PhoneNumber)
	if req.PhoneNumber != "" && !validate.PhoneValid(phone) {
		fieldErrs.Add("phone_number", "Invalid phone number")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Photo = req.Photo
	if phone != "" {
		user.PhoneNumber = phone
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, nil, err
	}

	return &dto.UserResponse{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Role:        user.Role,
	}, nil, nil
}
