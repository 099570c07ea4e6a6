package dto

import "github.com/google/uuid"

// Admin catalog registration forms. Slugs are never submitted; they
// are derived from names server-side.

type CreateCategoryRequest struct {
	Name  string `json:"name" form:"name"`
	Image string `json:"image" form:"image"`
}

type CreateProductRequest struct {
	Name         string            `json:"name" form:"name"`
	Price        float64           `json:"price" form:"price"`
	Description  string            `json:"description" form:"description"`
	CategorySlug string            `json:"category_slug" form:"category_slug"`
	StoreID      uuid.UUID         `json:"store_id" form:"store_id"`
	Video        string            `json:"video" form:"video"`
	Attributes   map[string]string `json:"attributes"`
	Images       []string          `json:"images"`
}

type CreateStoreRequest struct {
	Name    string    `json:"name" form:"name"`
	OwnerID uuid.UUID `json:"owner_id" form:"owner_id"`
	Image   string    `json:"image" form:"image"`
}

type CreateRegionRequest struct {
	Name string `json:"name" form:"name"`
}
