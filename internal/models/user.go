package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies an account for UI and authorization decisions.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleManager  = "manager"
	RoleSeller   = "seller"
	RoleUser     = "user"
)

// User is identified by phone number, not username. Phone numbers are
// stored digit-only; the column name is kept for compatibility with
// existing data.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PhoneNumber string         `gorm:"column:user_phone_number;size:12;not null;uniqueIndex" json:"phone_number"`
	Password    string         `gorm:"not null" json:"-"`
	Role        string         `gorm:"size:50;default:'user'" json:"role"`
	FirstName   string         `gorm:"size:150" json:"first_name"`
	LastName    string         `gorm:"size:150" json:"last_name"`
	Email       string         `gorm:"size:255" json:"email"`
	Photo       string         `gorm:"size:500" json:"photo,omitempty"`
	IsStaff     bool           `gorm:"default:false" json:"-"`
	IsSuperuser bool           `gorm:"default:false" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
