package services

import (
	"context"
	"testing"

	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateRequiresPhoto(t *testing.T) {
	users := NewUserService(&fakeUserRepo{})
	svc := NewProfileService(users)
	ctx := context.Background()

	user, err := users.Create(ctx, "998901234567", "secret", nil)
	require.NoError(t, err)

	_, fieldErrs, err := svc.Update(ctx, user.ID, &dto.ProfileRequest{
		FirstName: "Ali",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "photo")

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.FirstName, "invalid form must not be persisted")
}

func TestProfileUpdatePersists(t *testing.T) {
	users := NewUserService(&fakeUserRepo{})
	svc := NewProfileService(users)
	ctx := context.Background()

	user, err := users.Create(ctx, "998901234567", "secret", nil)
	require.NoError(t, err)

	resp, fieldErrs, err := svc.Update(ctx, user.ID, &dto.ProfileRequest{
		FirstName:   "Ali",
		LastName:    "Valiyev",
		PhoneNumber: "+998 (91) 765-43-21",
		Email:       "ali@example.com",
		Photo:       "photos/ali.jpg",
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, "998917654321", resp.PhoneNumber)

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali", stored.FirstName)
	assert.Equal(t, "photos/ali.jpg", stored.Photo)
}

func TestProfileUpdateRejectsShortPhone(t *testing.T) {
	users := NewUserService(&fakeUserRepo{})
	svc := NewProfileService(users)
	ctx := context.Background()

	user, err := users.Create(ctx, "998901234567", "secret", nil)
	require.NoError(t, err)

	_, fieldErrs, err := svc.Update(ctx, user.ID, &dto.ProfileRequest{
		PhoneNumber: "12345",
		Photo:       "photos/ali.jpg",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "phone_number")
}
