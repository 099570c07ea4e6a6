package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"github.com/olimjonbek/savdo-backend/internal/repository"
	"github.com/olimjonbek/savdo-backend/internal/slug"
	"github.com/olimjonbek/savdo-backend/internal/validate"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrStoreNotFound    = errors.New("store not found")
	ErrNameRequired     = errors.New("name is required")
	ErrBadVideoFormat   = errors.New("video format not allowed")
	ErrCommentRequired  = errors.New("comment text is required")
)

const (
	// HomePageSize is how many categories one home page shows.
	HomePageSize = 10
	// PopularLimit is how many best-selling products the home page shows.
	PopularLimit = 8
)

// CatalogService assembles listings and detail views, and registers
// new catalog entities with derived slugs.
type CatalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	stores     repository.StoreRepository
	regions    repository.RegionRepository
	comments   repository.CommentRepository
}

func NewCatalogService(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	stores repository.StoreRepository,
	regions repository.RegionRepository,
	comments repository.CommentRepository,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
		stores:     stores,
		regions:    regions,
		comments:   comments,
	}
}

// Home returns one page of categories in insertion order, the full
// product list, and the most-ordered products.
func (s *CatalogService) Home(ctx context.Context, page int) (*dto.HomeResponse, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx, (page-1)*HomePageSize, HomePageSize)
	if err != nil {
		return nil, err
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	popular, err := s.products.MostOrdered(ctx, PopularLimit)
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		Categories:      mapCategories(categories),
		Page:            page,
		TotalPages:      int(math.Ceil(float64(total) / float64(HomePageSize))),
		Products:        mapProducts(products),
		PopularProducts: mapProducts(popular),
	}, nil
}

// ListProducts returns all products, optionally filtered to one
// category by slug, plus the full category list for the filter UI.
func (s *CatalogService) ListProducts(ctx context.Context, categorySlug string) (*dto.ProductListResponse, error) {
	var (
		products []models.Product
		err      error
	)
	if categorySlug != "" {
		products, err = s.products.ByCategorySlug(ctx, categorySlug)
	} else {
		products, err = s.products.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ProductListResponse{
		Products:   mapProducts(products),
		Categories: mapCategories(categories),
	}, nil
}

// ProductDetail returns one product by slug with its comments.
func (s *CatalogService) ProductDetail(ctx context.Context, productSlug string) (*dto.ProductDetailResponse, error) {
	product, err := s.products.BySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	comments := make([]dto.CommentResponse, len(product.Comments))
	for i, cm := range product.Comments {
		author := strings.TrimSpace(cm.User.FirstName + " " + cm.User.LastName)
		if author == "" {
			author = cm.User.PhoneNumber
		}
		comments[i] = dto.CommentResponse{
			ID:       cm.ID,
			Text:     cm.Text,
			Author:   author,
			PostedAt: cm.CreatedAt.Format(time.RFC3339),
		}
	}

	return &dto.ProductDetailResponse{
		Product:  mapProduct(product),
		Comments: comments,
	}, nil
}

// AddComment attaches a user's comment to a product.
func (s *CatalogService) AddComment(ctx context.Context, userID uuid.UUID, productSlug, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrCommentRequired
	}

	product, err := s.products.BySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return s.comments.Create(ctx, &models.Comment{
		Text:      text,
		UserID:    userID,
		ProductID: product.ID,
	})
}

// CreateCategory registers a category with a derived unique slug.
func (s *CatalogService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	categorySlug, err := slug.Generate(req.Name, func(candidate string) (bool, error) {
		return s.categories.SlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:  req.Name,
		Slug:  categorySlug,
		Image: req.Image,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// CreateProduct registers a product (and its inline images) with a
// derived unique slug. The category is referenced by slug, so it must
// exist; the video filename must carry an allowed extension.
func (s *CatalogService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Video != "" && !validate.VideoExtensionAllowed(req.Video, models.VideoExtensions) {
		return nil, ErrBadVideoFormat
	}

	exists, err := s.categories.SlugExists(ctx, req.CategorySlug)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	if _, err := s.stores.FindByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	productSlug, err := slug.Generate(req.Name, func(candidate string) (bool, error) {
		return s.products.SlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:         req.Name,
		Slug:         productSlug,
		Price:        req.Price,
		Description:  req.Description,
		Video:        req.Video,
		CategorySlug: req.CategorySlug,
		StoreID:      req.StoreID,
	}
	if len(req.Attributes) > 0 {
		raw, err := json.Marshal(req.Attributes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode attributes: %w", err)
		}
		product.Attributes = datatypes.JSON(raw)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	images := make([]models.ProductImage, len(req.Images))
	for i, img := range req.Images {
		images[i] = models.ProductImage{Image: img, ProductID: product.ID}
	}
	if err := s.products.AddImages(ctx, images); err != nil {
		return nil, fmt.Errorf("failed to save product images: %w", err)
	}
	product.Images = images

	return product, nil
}

// CreateStore registers a seller store with a derived unique slug.
func (s *CatalogService) CreateStore(ctx context.Context, req *dto.CreateStoreRequest) (*models.Store, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	storeSlug, err := slug.Generate(req.Name, func(candidate string) (bool, error) {
		return s.stores.SlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}

	store := &models.Store{
		Name:    req.Name,
		Slug:    storeSlug,
		OwnerID: req.OwnerID,
		Image:   req.Image,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

// CreateRegion registers a delivery region.
func (s *CatalogService) CreateRegion(ctx context.Context, req *dto.CreateRegionRequest) (*models.Region, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	region := &models.Region{Name: req.Name}
	if err := s.regions.Create(ctx, region); err != nil {
		return nil, fmt.Errorf("failed to create region: %w", err)
	}
	return region, nil
}

// Regions lists all delivery regions.
func (s *CatalogService) Regions(ctx context.Context) ([]models.Region, error) {
	return s.regions.All(ctx)
}

// SellerProducts lists the products of stores owned by a seller, for
// the cabinet market page.
func (s *CatalogService) SellerProducts(ctx context.Context, ownerID uuid.UUID) ([]dto.ProductResponse, error) {
	products, err := s.products.ByStoreOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

// SellerStores lists the stores a seller owns.
func (s *CatalogService) SellerStores(ctx context.Context, ownerID uuid.UUID) ([]models.Store, error) {
	return s.stores.ByOwner(ctx, ownerID)
}

func mapCategories(categories []models.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = dto.CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Image: c.Image}
	}
	return out
}

func mapProducts(products []models.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, len(products))
	for i := range products {
		out[i] = mapProduct(&products[i])
	}
	return out
}

func mapProduct(p *models.Product) dto.ProductResponse {
	images := make([]string, len(p.Images))
	for i, img := range p.Images {
		images[i] = img.Image
	}
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		Description:  p.Description,
		OrderCount:   p.OrderCount,
		Video:        p.Video,
		Attributes:   p.Attributes,
		CategorySlug: p.CategorySlug,
		Images:       images,
	}
}
