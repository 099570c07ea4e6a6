package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Image string    `json:"image"`
}

type ProductResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Price        float64        `json:"price"`
	Description  string         `json:"description"`
	OrderCount   int            `json:"order_count"`
	Video        string         `json:"video,omitempty"`
	Attributes   datatypes.JSON `json:"attributes,omitempty"`
	CategorySlug string         `json:"category_slug"`
	Images       []string       `json:"images"`
}

type CommentResponse struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Author   string    `json:"author"`
	PostedAt string    `json:"posted_at"`
}

// HomeResponse is the home page view model: a page of categories, the
// full product list and the most-ordered products.
type HomeResponse struct {
	Categories      []CategoryResponse `json:"categories"`
	Page            int                `json:"page"`
	TotalPages      int                `json:"total_pages"`
	Products        []ProductResponse  `json:"products"`
	PopularProducts []ProductResponse  `json:"popular_products"`
}

// ProductListResponse always carries the full category list so the
// filter UI can be rendered next to the (optionally filtered) products.
type ProductListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
}

type ProductDetailResponse struct {
	Product  ProductResponse   `json:"product"`
	Comments []CommentResponse `json:"comments"`
}
