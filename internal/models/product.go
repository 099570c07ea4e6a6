package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VideoExtensions lists the allowed product video file extensions.
var VideoExtensions = []string{"mov", "avi", "mp4", "webm", "mkv"}

// Product belongs to a category by slug and to a store. OrderCount is
// incremented on every purchase-intent submission and drives the
// popular-products ranking.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Slug         string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Price        float64        `gorm:"not null" json:"price"`
	Description  string         `gorm:"type:text" json:"description"`
	OrderCount   int            `gorm:"default:0" json:"order_count"`
	Video        string         `gorm:"size:500" json:"video,omitempty"`
	Attributes   datatypes.JSON `gorm:"type:jsonb" json:"attributes,omitempty"`
	CategorySlug string         `gorm:"size:255;not null;index" json:"category_slug"`
	StoreID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Category Category       `gorm:"foreignKey:CategorySlug;references:Slug" json:"-"`
	Store    Store          `gorm:"foreignKey:StoreID" json:"-"`
	Images   []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Comments []Comment      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// ProductImage is one gallery image of a product.
type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Image     string    `gorm:"size:500;not null" json:"image"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
}
