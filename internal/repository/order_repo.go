package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"gorm.io/gorm"
)

// OrderRepository is the data-access boundary for purchase intents.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
}

// CommentRepository is the data-access boundary for product comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(order).Error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(comment).Error
}
