package dto

import "github.com/google/uuid"

// OrderRequest is the purchase-intent form on the product detail page.
type OrderRequest struct {
	FullName    string `json:"full_name" form:"full_name"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
}

type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductSlug string    `json:"product_slug"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   string    `json:"created_at"`
}

type CommentRequest struct {
	ProductSlug string `json:"product_slug" form:"product_slug"`
	Text        string `json:"text" form:"text"`
}
