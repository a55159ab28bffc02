package dto

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserName string `json:"user_name"`
	UserRole string `json:"user_role"`
}
