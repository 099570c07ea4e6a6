package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository is the data-access boundary for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]models.Category, error)
	Count(ctx context.Context) (int64, error)
	All(ctx context.Context) ([]models.Category, error)
}

// ProductRepository is the data-access boundary for products and their
// images.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	AddImages(ctx context.Context, images []models.ProductImage) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	All(ctx context.Context) ([]models.Product, error)
	ByCategorySlug(ctx context.Context, categorySlug string) ([]models.Product, error)
	BySlug(ctx context.Context, slug string) (*models.Product, error)
	ByStoreOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error)
	MostOrdered(ctx context.Context, limit int) ([]models.Product, error)
	IncrementOrderCount(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// List returns categories in insertion order.
func (r *categoryRepository) List(ctx context.Context, offset, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("created_at ASC").Offset(offset).Limit(limit).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error
	return count, err
}

func (r *categoryRepository) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error
	return categories, err
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) AddImages(ctx context.Context, images []models.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *productRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *productRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Preload("Images").Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) ByCategorySlug(ctx context.Context, categorySlug string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Preload("Images").
		Where("category_slug = ?", categorySlug).
		Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) BySlug(ctx context.Context, productSlug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		Preload("Comments").
		Preload("Comments.User").
		Where("slug = ?", productSlug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ByStoreOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Preload("Images").
		Joins("JOIN stores ON stores.id = products.store_id").
		Where("stores.owner_id = ?", ownerID).
		Order("products.created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) MostOrdered(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Preload("Images").
		Order("order_count DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) IncrementOrderCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("order_count", gorm.Expr("order_count + 1")).Error
}
