package auth

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// ProfileResponse is the authenticated client's profile view.
type ProfileResponse struct {
	ClientID string `json:"clientId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
