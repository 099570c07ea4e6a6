package models

import "github.com/google/uuid"

// Region is a delivery region, registered by admins.
type Region struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
}
