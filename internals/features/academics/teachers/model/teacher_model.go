package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel represents the `teachers` table.
type TeacherModel struct {
	TeacherID        uuid.UUID  `json:"teacher_id" gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TeacherAcademyID uuid.UUID  `json:"teacher_academy_id" gorm:"column:teacher_academy_id;type:uuid;not null;index"` // FK -> academies(academy_id)
	TeacherUserID    *uuid.UUID `json:"teacher_user_id,omitempty" gorm:"column:teacher_user_id;type:uuid"`            // FK -> users(user_id), optional

	TeacherName  string  `json:"teacher_name" gorm:"column:teacher_name;type:varchar(120);not null"`
	TeacherEmail *string `json:"teacher_email,omitempty" gorm:"column:teacher_email;type:varchar(160)"`
	TeacherPhone *string `json:"teacher_phone,omitempty" gorm:"column:teacher_phone;type:varchar(30)"`

	// e.g. "phonics", "conversation", "TOEFL prep"
	TeacherSpecialty *string `json:"teacher_specialty,omitempty" gorm:"column:teacher_specialty;type:varchar(120)"`

	// full_time | part_time | contract
	TeacherEmploymentStatus string `json:"teacher_employment_status" gorm:"column:teacher_employment_status;type:varchar(20);not null;default:'full_time'"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"column:teacher_is_active;not null;default:true"`

	TeacherCreatedAt time.Time  `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt *time.Time `json:"teacher_updated_at,omitempty" gorm:"column:teacher_updated_at"`
	TeacherDeletedAt *time.Time `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
