package request

// LoginRequest represents a login request. Owners send email and
// password, staff send staff_id and pin.
type LoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required_with=Email"`
	StaffID  string `json:"staff_id" binding:"required_without=Email"`
	PIN      string `json:"pin" binding:"required_with=StaffID,omitempty,min=4"`
}

// RegisterStaffRequest represents a staff registration request
type RegisterStaffRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	StaffID string `json:"staff_id" binding:"required,min=3,max=50"`
	PIN     string `json:"pin" binding:"required,min=4,max=12"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// GoogleCallbackRequest represents the OAuth callback exchange
type GoogleCallbackRequest struct {
	Code string `json:"code" binding:"required"`
}
