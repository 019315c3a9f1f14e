package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	TokenType string `json:"token_type"`
	User      User   `json:"user"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the replacement access token. Refresh is empty
// unless the backend rotates refresh tokens.
type RefreshResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh,omitempty"`
	TokenType string `json:"token_type"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}
