package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a slugged catalog entity; the slug is derived from the
// name at creation and is the key products reference it by.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Image     string    `gorm:"size:500" json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:CategorySlug;references:Slug;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
