package dto

import (
	"time"

	"academylms_backend/internals/features/users/users/model"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	UserID        string    `json:"user_id"`
	UserAcademyID string    `json:"user_academy_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserRole     string `json:"user_role" validate:"required,oneof=owner admin teacher student"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=2,max=120"`
	UserEmail    *string `json:"user_email" validate:"omitempty,email"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=owner admin teacher student"`
	UserPassword *string `json:"user_password" validate:"omitempty,min=8,max=72"`
	UserIsActive *bool   `json:"user_is_active"`
}

// ============================
// Converter
// ============================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:        m.UserID.String(),
		UserAcademyID: m.UserAcademyID.String(),
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
