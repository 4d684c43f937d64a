package user

type CreateSupervisorRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	NIN         string `json:"nin"`
	PhoneNumber string `json:"phone_number"`
}

type CreateEmployeeRequest struct {
	Email                 string `json:"email" binding:"required,email"`
	FirstName             string `json:"first_name" binding:"required"`
	LastName              string `json:"last_name" binding:"required"`
	NIN                   string `json:"nin" binding:"required"`
	PhoneNumber           string `json:"phone_number" binding:"required"`
	Address               string `json:"address" binding:"required"`
	EmergencyContactName  string `json:"emergency_contact_name" binding:"required"`
	EmergencyContactPhone string `json:"emergency_contact_phone" binding:"required"`
}

type SetupPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type ProfileResponse struct {
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	FullName              string  `json:"full_name"`
	NIN                   *string `json:"nin,omitempty"`
	PhoneNumber           string  `json:"phone_number,omitempty"`
	Address               string  `json:"address,omitempty"`
	EmergencyContactName  string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string  `json:"emergency_contact_phone,omitempty"`
}

type UserResponse struct {
	ID             string           `json:"id"`
	Email          string           `json:"email"`
	Role           string           `json:"role"`
	OrganizationID string           `json:"organization_id"`
	SupervisorID   *string          `json:"supervisor_id,omitempty"`
	IsActive       bool             `json:"is_active"`
	EmailVerified  bool             `json:"email_verified"`
	CreatedAt      string           `json:"created_at"`
	Profile        *ProfileResponse `json:"profile,omitempty"`
}

type SetupAccountResponse struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
