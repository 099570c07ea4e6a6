package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"github.com/olimjonbek/savdo-backend/internal/repository"
	"github.com/olimjonbek/savdo-backend/internal/validate"
	"gorm.io/gorm"
)

// OrderService captures purchase-intent records.
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// Submit validates and persists one purchase intent, then bumps the
// product's order counter. Notification of the seller is not done
// here.
// TODO: send an SMS to the buyer once an SMS gateway is picked.
func (s *OrderService) Submit(ctx context.Context, userID uuid.UUID, productSlug string, req *dto.OrderRequest) (*dto.OrderResponse, validate.FieldErrors, error) {
	fieldErrs := validate.FieldErrors{}
	phone := validate.NormalizePhone(req.PhoneNumber)
	if phone == "" {
		fieldErrs.Add("phone_number", "Phone number is required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		fieldErrs.Add("full_name", "Full name is required")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	product, err := s.products.BySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProductNotFound
		}
		return nil, nil, err
	}

	order := &models.Order{
		UserID:      userID,
		ProductID:   product.ID,
		PhoneNumber: phone,
		FullName:    strings.TrimSpace(req.FullName),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.products.IncrementOrderCount(ctx, product.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to bump order count: %w", err)
	}

	return &dto.OrderResponse{
		ID:          order.ID,
		ProductSlug: product.Slug,
		FullName:    order.FullName,
		PhoneNumber: order.PhoneNumber,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}, nil, nil
}
