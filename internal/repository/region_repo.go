package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"gorm.io/gorm"
)

// RegionRepository is the data-access boundary for delivery regions.
type RegionRepository interface {
	Create(ctx context.Context, region *models.Region) error
	All(ctx context.Context) ([]models.Region, error)
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) Create(ctx context.Context, region *models.Region) error {
	if region.ID == uuid.Nil {
		region.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *regionRepository) All(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	err := r.db.WithContext(ctx).Order("name ASC").Find(&regions).Error
	return regions, err
}
