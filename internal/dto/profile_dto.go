package dto

// ProfileRequest is the profile update form. Photo is required.
type ProfileRequest struct {
	FirstName   string `json:"first_name" form:"first_name"`
	LastName    string `json:"last_name" form:"last_name"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Email       string `json:"email" form:"email"`
	Photo       string `json:"photo" form:"photo"`
}
