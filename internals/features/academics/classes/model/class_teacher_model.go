package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassTeacherModel represents the `class_teachers` join table.
// Partial unique index in SQL:
//
//	CREATE UNIQUE INDEX uq_class_teachers_primary
//	ON class_teachers (class_teacher_academy_id, class_teacher_class_id)
//	WHERE class_teacher_is_primary = true AND class_teacher_deleted_at IS NULL;
type ClassTeacherModel struct {
	ClassTeacherID        uuid.UUID `json:"class_teacher_id" gorm:"column:class_teacher_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassTeacherAcademyID uuid.UUID `json:"class_teacher_academy_id" gorm:"column:class_teacher_academy_id;type:uuid;not null;index"`
	ClassTeacherClassID   uuid.UUID `json:"class_teacher_class_id" gorm:"column:class_teacher_class_id;type:uuid;not null;index"`  // FK -> classes(class_id)
	ClassTeacherTeacherID uuid.UUID `json:"class_teacher_teacher_id" gorm:"column:class_teacher_teacher_id;type:uuid;not null"`    // FK -> teachers(teacher_id)

	ClassTeacherIsPrimary bool `json:"class_teacher_is_primary" gorm:"column:class_teacher_is_primary;not null;default:false"`

	ClassTeacherCreatedAt time.Time  `json:"class_teacher_created_at" gorm:"column:class_teacher_created_at;not null;autoCreateTime"`
	ClassTeacherDeletedAt *time.Time `json:"class_teacher_deleted_at,omitempty" gorm:"column:class_teacher_deleted_at"`
}

func (ClassTeacherModel) TableName() string {
	return "class_teachers"
}
