package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel represents the `students` table.
type StudentModel struct {
	StudentID        uuid.UUID  `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentAcademyID uuid.UUID  `json:"student_academy_id" gorm:"column:student_academy_id;type:uuid;not null;index"` // FK -> academies(academy_id)
	StudentUserID    *uuid.UUID `json:"student_user_id,omitempty" gorm:"column:student_user_id;type:uuid"`            // FK -> users(user_id), optional

	StudentName string `json:"student_name" gorm:"column:student_name;type:varchar(120);not null"`
	// academy-facing student number, unique per academy among live rows
	StudentCode *string `json:"student_code,omitempty" gorm:"column:student_code;type:varchar(40)"`

	// school grade band the student belongs to (e.g. 3 for 3rd grade)
	StudentGrade *int `json:"student_grade,omitempty" gorm:"column:student_grade"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty" gorm:"column:student_guardian_name;type:varchar(120)"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty" gorm:"column:student_guardian_phone;type:varchar(30)"`

	// active | paused | left
	StudentEnrollmentStatus string `json:"student_enrollment_status" gorm:"column:student_enrollment_status;type:varchar(20);not null;default:'active'"`

	StudentCreatedAt time.Time  `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt *time.Time `json:"student_updated_at,omitempty" gorm:"column:student_updated_at"`
	StudentDeletedAt *time.Time `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
