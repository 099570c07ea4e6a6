package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"gorm.io/gorm"
)

// In-memory repository fakes. Each one keeps records in a slice and
// mirrors the gorm.ErrRecordNotFound contract of the real
// implementations.

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeTokenRepo struct {
	tokens []*models.RefreshToken
}

func (r *fakeTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	cp := *token
	r.tokens = append(r.tokens, &cp)
	return nil
}

func (r *fakeTokenRepo) FindActive(_ context.Context, hash string) (*models.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.TokenHash == hash && !t.Revoked {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTokenRepo) Revoke(_ context.Context, hash string) error {
	for _, t := range r.tokens {
		if t.TokenHash == hash {
			t.Revoked = true
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) List(_ context.Context, offset, limit int) ([]models.Category, error) {
	if offset >= len(r.categories) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.categories) {
		end = len(r.categories)
	}
	return r.categories[offset:end], nil
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) All(_ context.Context) ([]models.Category, error) {
	return r.categories, nil
}

type fakeProductRepo struct {
	products []models.Product
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *fakeProductRepo) AddImages(_ context.Context, images []models.ProductImage) error {
	for i := range r.products {
		for _, img := range images {
			if img.ProductID == r.products[i].ID {
				r.products[i].Images = append(r.products[i].Images, img)
			}
		}
	}
	return nil
}

func (r *fakeProductRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) All(_ context.Context) ([]models.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) ByCategorySlug(_ context.Context, categorySlug string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.CategorySlug == categorySlug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) BySlug(_ context.Context, slug string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].Slug == slug {
			cp := r.products[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) ByStoreOwner(_ context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) MostOrdered(_ context.Context, limit int) ([]models.Product, error) {
	sorted := make([]models.Product, len(r.products))
	copy(sorted, r.products)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].OrderCount > sorted[i].OrderCount {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *fakeProductRepo) IncrementOrderCount(_ context.Context, id uuid.UUID) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].OrderCount++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeStoreRepo struct {
	stores []models.Store
}

func (r *fakeStoreRepo) Create(_ context.Context, store *models.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	r.stores = append(r.stores, *store)
	return nil
}

func (r *fakeStoreRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, s := range r.stores {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStoreRepo) ByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Store, error) {
	var out []models.Store
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Store, error) {
	for i := range r.stores {
		if r.stores[i].ID == id {
			cp := r.stores[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRegionRepo struct {
	regions []models.Region
}

func (r *fakeRegionRepo) Create(_ context.Context, region *models.Region) error {
	if region.ID == uuid.Nil {
		region.ID = uuid.New()
	}
	r.regions = append(r.regions, *region)
	return nil
}

func (r *fakeRegionRepo) All(_ context.Context) ([]models.Region, error) {
	return r.regions, nil
}

type fakeOrderRepo struct {
	orders []models.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

type fakeCommentRepo struct {
	comments []models.Comment
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	r.comments = append(r.comments, *comment)
	return nil
}
