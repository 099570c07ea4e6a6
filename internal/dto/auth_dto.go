package dto

import "github.com/google/uuid"

// LoginRequest is one login submission. PhoneNumber may carry
// formatting characters; Next is an optional post-login redirect.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Password    string `json:"password" form:"password"`
	Next        string `json:"next" form:"next"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role"`
}

// AuthResponse is returned on successful login or refresh. Redirect is
// where the client should navigate next ("next" target or home).
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Redirect     string       `json:"redirect"`
	Registered   bool         `json:"registered"`
	User         UserResponse `json:"user"`
}
