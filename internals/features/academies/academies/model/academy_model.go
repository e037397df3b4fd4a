package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademyModel represents the `academies` table (one row per tenant).
type AcademyModel struct {
	AcademyID   uuid.UUID `json:"academy_id" gorm:"column:academy_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AcademyName string    `json:"academy_name" gorm:"column:academy_name;type:varchar(120);not null"`
	AcademySlug string    `json:"academy_slug" gorm:"column:academy_slug;type:varchar(160);unique;not null"`

	AcademyContactEmail *string `json:"academy_contact_email,omitempty" gorm:"column:academy_contact_email;type:varchar(160)"`
	AcademyContactPhone *string `json:"academy_contact_phone,omitempty" gorm:"column:academy_contact_phone;type:varchar(30)"`
	AcademyAddress      *string `json:"academy_address,omitempty" gorm:"column:academy_address;type:text"`
	AcademyLogoURL      *string `json:"academy_logo_url,omitempty" gorm:"column:academy_logo_url;type:text"`

	AcademyIsActive bool `json:"academy_is_active" gorm:"column:academy_is_active;not null;default:true"`

	AcademyCreatedAt time.Time  `json:"academy_created_at" gorm:"column:academy_created_at;not null;autoCreateTime"`
	AcademyUpdatedAt *time.Time `json:"academy_updated_at,omitempty" gorm:"column:academy_updated_at;autoUpdateTime:false"`
	AcademyDeletedAt *time.Time `json:"academy_deleted_at,omitempty" gorm:"column:academy_deleted_at"`
}

func (AcademyModel) TableName() string {
	return "academies"
}
