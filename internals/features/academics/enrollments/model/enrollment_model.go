package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentModel represents the `enrollments` table (student ↔ class).
// One live active enrollment per (academy, student, class):
//
//	CREATE UNIQUE INDEX uq_enrollments_active
//	ON enrollments (enrollment_academy_id, enrollment_student_id, enrollment_class_id)
//	WHERE enrollment_status = 'active' AND enrollment_deleted_at IS NULL;
type EnrollmentModel struct {
	EnrollmentID        uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnrollmentAcademyID uuid.UUID `json:"enrollment_academy_id" gorm:"column:enrollment_academy_id;type:uuid;not null;index"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" gorm:"column:enrollment_student_id;type:uuid;not null;index"` // FK -> students(student_id)
	EnrollmentClassID   uuid.UUID `json:"enrollment_class_id" gorm:"column:enrollment_class_id;type:uuid;not null;index"`     // FK -> classes(class_id)

	// active | completed | withdrawn
	EnrollmentStatus string `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:'active'"`

	EnrollmentJoinedAt time.Time  `json:"enrollment_joined_at" gorm:"column:enrollment_joined_at;not null;autoCreateTime"`
	EnrollmentLeftAt   *time.Time `json:"enrollment_left_at,omitempty" gorm:"column:enrollment_left_at"`

	EnrollmentCreatedAt time.Time  `json:"enrollment_created_at" gorm:"column:enrollment_created_at;not null;autoCreateTime"`
	EnrollmentUpdatedAt *time.Time `json:"enrollment_updated_at,omitempty" gorm:"column:enrollment_updated_at"`
	EnrollmentDeletedAt *time.Time `json:"enrollment_deleted_at,omitempty" gorm:"column:enrollment_deleted_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
