package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase-intent record: who wants which product, under
// what name and (digit-normalized) phone number. One row per
// submission; there is no order lifecycle beyond creation.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	PhoneNumber string    `gorm:"size:25;not null" json:"phone_number"`
	FullName    string    `gorm:"size:255;not null" json:"full_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}
