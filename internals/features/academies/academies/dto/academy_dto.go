package dto

import (
	"time"

	"academylms_backend/internals/features/academies/academies/model"
)

// ============================
// Response DTO
// ============================
type AcademyDTO struct {
	AcademyID           string     `json:"academy_id"`
	AcademyName         string     `json:"academy_name"`
	AcademySlug         string     `json:"academy_slug"`
	AcademyContactEmail *string    `json:"academy_contact_email,omitempty"`
	AcademyContactPhone *string    `json:"academy_contact_phone,omitempty"`
	AcademyAddress      *string    `json:"academy_address,omitempty"`
	AcademyLogoURL      *string    `json:"academy_logo_url,omitempty"`
	AcademyIsActive     bool       `json:"academy_is_active"`
	AcademyCreatedAt    time.Time  `json:"academy_created_at"`
	AcademyUpdatedAt    *time.Time `json:"academy_updated_at,omitempty"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateAcademyRequest struct {
	AcademyName         string  `json:"academy_name" validate:"required,min=2,max=120"`
	AcademyContactEmail *string `json:"academy_contact_email" validate:"omitempty,email"`
	AcademyContactPhone *string `json:"academy_contact_phone" validate:"omitempty,max=30"`
	AcademyAddress      *string `json:"academy_address"`
	AcademyLogoURL      *string `json:"academy_logo_url" validate:"omitempty,url"`
}

type UpdateAcademyRequest struct {
	AcademyName         *string `json:"academy_name" validate:"omitempty,min=2,max=120"`
	AcademyContactEmail *string `json:"academy_contact_email" validate:"omitempty,email"`
	AcademyContactPhone *string `json:"academy_contact_phone" validate:"omitempty,max=30"`
	AcademyAddress      *string `json:"academy_address"`
	AcademyLogoURL      *string `json:"academy_logo_url" validate:"omitempty,url"`
	AcademyIsActive     *bool   `json:"academy_is_active"`
}

// ============================
// Converter
// ============================
func ToAcademyDTO(m model.AcademyModel) AcademyDTO {
	return AcademyDTO{
		AcademyID:           m.AcademyID.String(),
		AcademyName:         m.AcademyName,
		AcademySlug:         m.AcademySlug,
		AcademyContactEmail: m.AcademyContactEmail,
		AcademyContactPhone: m.AcademyContactPhone,
		AcademyAddress:      m.AcademyAddress,
		AcademyLogoURL:      m.AcademyLogoURL,
		AcademyIsActive:     m.AcademyIsActive,
		AcademyCreatedAt:    m.AcademyCreatedAt,
		AcademyUpdatedAt:    m.AcademyUpdatedAt,
	}
}
