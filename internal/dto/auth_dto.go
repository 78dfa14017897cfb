package dto

import "github.com/internlink/internlink-api/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type InternSignupRequest struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	University     string `json:"university" validate:"required"`
	Major          string `json:"major" validate:"required"`
	GraduationYear *int   `json:"graduationYear" validate:"omitempty,gte=1900,lte=2100"`
}

type ProviderSignupRequest struct {
	CompanyName string  `json:"companyName" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Industry    string  `json:"industry" validate:"required"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

type UserResponse struct {
	ID    uint        `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SignupResponse struct {
	User *models.User `json:"user"`
}
