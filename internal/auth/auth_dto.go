package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name,omitempty"`
	Role           string  `json:"role"`
	OrganizationID string  `json:"organization_id"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	EmailVerified  bool    `json:"email_verified"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   string       `json:"expires_at"`
	User        AuthResponse `json:"user"`
}
