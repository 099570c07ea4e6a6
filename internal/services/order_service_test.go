package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitOrderFieldValidation(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := NewOrderService(orders, &fakeProductRepo{})

	_, fieldErrs, err := svc.Submit(context.Background(), uuid.New(), "p1", &dto.OrderRequest{
		FullName:    "  ",
		PhoneNumber: "abc",
	})

	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "full_name")
	assert.Contains(t, fieldErrs, "phone_number")
	assert.Empty(t, orders.orders)
}

func TestSubmitOrderUnknownProduct(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, &fakeProductRepo{})

	_, _, err := svc.Submit(context.Background(), uuid.New(), "ghost", &dto.OrderRequest{
		FullName:    "Ali Valiyev",
		PhoneNumber: "998901234567",
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSubmitOrderNormalizesPhoneAndBumpsCounter(t *testing.T) {
	orders := &fakeOrderRepo{}
	products := &fakeProductRepo{}
	svc := NewOrderService(orders, products)
	ctx := context.Background()

	require.NoError(t, products.Create(ctx, &models.Product{Name: "Phone", Slug: "phone"}))

	userID := uuid.New()
	resp, fieldErrs, err := svc.Submit(ctx, userID, "phone", &dto.OrderRequest{
		FullName:    " Ali Valiyev ",
		PhoneNumber: "+998 (90) 123-45-67",
	})

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, "998901234567", resp.PhoneNumber)
	assert.Equal(t, "Ali Valiyev", resp.FullName)

	require.Len(t, orders.orders, 1)
	assert.Equal(t, userID, orders.orders[0].UserID)
	assert.Equal(t, 1, products.products[0].OrderCount)
}
