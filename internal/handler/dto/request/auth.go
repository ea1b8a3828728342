package request

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=user provider admin"`
	// Provider profile, required by the usecase when role is provider.
	ProviderName      string `json:"provider_name,omitempty"`
	ProviderSpecialty string `json:"provider_specialty,omitempty"`
	ProviderBio       string `json:"provider_bio,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
