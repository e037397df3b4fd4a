package dto

import (
	"time"

	"github.com/google/uuid"

	"academylms_backend/internals/features/academics/teachers/model"
)

// ============================
// Response DTO
// ============================
type TeacherDTO struct {
	TeacherID               string     `json:"teacher_id"`
	TeacherAcademyID        string     `json:"teacher_academy_id"`
	TeacherUserID           *uuid.UUID `json:"teacher_user_id,omitempty"`
	TeacherName             string     `json:"teacher_name"`
	TeacherEmail            *string    `json:"teacher_email,omitempty"`
	TeacherPhone            *string    `json:"teacher_phone,omitempty"`
	TeacherSpecialty        *string    `json:"teacher_specialty,omitempty"`
	TeacherEmploymentStatus string     `json:"teacher_employment_status"`
	TeacherIsActive         bool       `json:"teacher_is_active"`
	TeacherCreatedAt        time.Time  `json:"teacher_created_at"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateTeacherRequest struct {
	TeacherUserID           *uuid.UUID `json:"teacher_user_id" validate:"omitempty"`
	TeacherName             string     `json:"teacher_name" validate:"required,min=2,max=120"`
	TeacherEmail            *string    `json:"teacher_email" validate:"omitempty,email"`
	TeacherPhone            *string    `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherSpecialty        *string    `json:"teacher_specialty" validate:"omitempty,max=120"`
	TeacherEmploymentStatus *string    `json:"teacher_employment_status" validate:"omitempty,oneof=full_time part_time contract"`
}

type UpdateTeacherRequest struct {
	TeacherName             *string `json:"teacher_name" validate:"omitempty,min=2,max=120"`
	TeacherEmail            *string `json:"teacher_email" validate:"omitempty,email"`
	TeacherPhone            *string `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherSpecialty        *string `json:"teacher_specialty" validate:"omitempty,max=120"`
	TeacherEmploymentStatus *string `json:"teacher_employment_status" validate:"omitempty,oneof=full_time part_time contract"`
	TeacherIsActive         *bool   `json:"teacher_is_active"`
}

// ============================
// Converter
// ============================
func ToTeacherDTO(m model.TeacherModel) TeacherDTO {
	return TeacherDTO{
		TeacherID:               m.TeacherID.String(),
		TeacherAcademyID:        m.TeacherAcademyID.String(),
		TeacherUserID:           m.TeacherUserID,
		TeacherName:             m.TeacherName,
		TeacherEmail:            m.TeacherEmail,
		TeacherPhone:            m.TeacherPhone,
		TeacherSpecialty:        m.TeacherSpecialty,
		TeacherEmploymentStatus: m.TeacherEmploymentStatus,
		TeacherIsActive:         m.TeacherIsActive,
		TeacherCreatedAt:        m.TeacherCreatedAt,
	}
}
