package organization

type RegisterRequest struct {
	OrganizationName string `json:"organization_name" binding:"required,max=100"`
	Description      string `json:"description"`
	OwnerEmail       string `json:"owner_email" binding:"required,email"`
	OwnerPassword    string `json:"owner_password" binding:"required,min=6"`
}

type OrganizationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	OwnerID     *string `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
}

type OwnerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Owner        OwnerResponse        `json:"owner"`
}
