package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClassExamAssignmentModel represents the `class_exam_assignments`
// table - the rollout of one exam to one class. The same exam may be
// assigned to a class more than once (retakes), so there is no
// uniqueness constraint here.
type ClassExamAssignmentModel struct {
	ClassExamAssignmentID        uuid.UUID `json:"class_exam_assignment_id" gorm:"column:class_exam_assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassExamAssignmentAcademyID uuid.UUID `json:"class_exam_assignment_academy_id" gorm:"column:class_exam_assignment_academy_id;type:uuid;not null;index"`
	ClassExamAssignmentClassID   uuid.UUID `json:"class_exam_assignment_class_id" gorm:"column:class_exam_assignment_class_id;type:uuid;not null;index"`
	ClassExamAssignmentExamID    uuid.UUID `json:"class_exam_assignment_exam_id" gorm:"column:class_exam_assignment_exam_id;type:uuid;not null;index"`

	// assigning teacher, optional
	ClassExamAssignmentTeacherID *uuid.UUID `json:"class_exam_assignment_teacher_id,omitempty" gorm:"column:class_exam_assignment_teacher_id;type:uuid"`

	ClassExamAssignmentAssignedAt     time.Time  `json:"class_exam_assignment_assigned_at" gorm:"column:class_exam_assignment_assigned_at;not null;autoCreateTime"`
	ClassExamAssignmentDueAt          *time.Time `json:"class_exam_assignment_due_at,omitempty" gorm:"column:class_exam_assignment_due_at"`
	ClassExamAssignmentAvailableFrom  *time.Time `json:"class_exam_assignment_available_from,omitempty" gorm:"column:class_exam_assignment_available_from"`
	ClassExamAssignmentAvailableUntil *time.Time `json:"class_exam_assignment_available_until,omitempty" gorm:"column:class_exam_assignment_available_until"`

	// overrides exam defaults, e.g. {"max_attempts": 2, "time_limit_minutes": 45, "shuffle": false}
	ClassExamAssignmentConfig datatypes.JSON `json:"class_exam_assignment_config,omitempty" gorm:"column:class_exam_assignment_config;type:jsonb"`

	// gradebook weight, 0..100
	ClassExamAssignmentWeight *float64 `json:"class_exam_assignment_weight,omitempty" gorm:"column:class_exam_assignment_weight;type:numeric(5,2)"`

	// e.g. "homework", "midterm"
	ClassExamAssignmentCategory *string `json:"class_exam_assignment_category,omitempty" gorm:"column:class_exam_assignment_category;type:varchar(40)"`

	ClassExamAssignmentCreatedAt time.Time  `json:"class_exam_assignment_created_at" gorm:"column:class_exam_assignment_created_at;not null;autoCreateTime"`
	ClassExamAssignmentUpdatedAt *time.Time `json:"class_exam_assignment_updated_at,omitempty" gorm:"column:class_exam_assignment_updated_at"`
	ClassExamAssignmentDeletedAt *time.Time `json:"class_exam_assignment_deleted_at,omitempty" gorm:"column:class_exam_assignment_deleted_at"`
}

func (ClassExamAssignmentModel) TableName() string {
	return "class_exam_assignments"
}
