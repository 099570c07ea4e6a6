package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"github.com/olimjonbek/savdo-backend/internal/session"
	"gorm.io/gorm"
)

// StoreRepository is the data-access boundary for seller stores.
type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Store, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *models.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Store{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *storeRepository) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Store, error) {
	var stores []models.Store
	err := r.db.WithContext(ctx).Scopes(session.ForOwner(ownerID)).Find(&stores).Error
	return stores, err
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}
