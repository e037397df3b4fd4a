package dto

import (
	"time"

	"github.com/google/uuid"

	"academylms_backend/internals/features/academics/classes/model"
)

// ============================
// Class DTOs
// ============================
type ClassDTO struct {
	ClassID               string     `json:"class_id"`
	ClassAcademyID        string     `json:"class_academy_id"`
	ClassName             string     `json:"class_name"`
	ClassSlug             string     `json:"class_slug"`
	ClassCode             *string    `json:"class_code,omitempty"`
	ClassCurriculumNodeID *uuid.UUID `json:"class_curriculum_node_id,omitempty"`
	ClassCapacity         *int       `json:"class_capacity,omitempty"`
	ClassScheduleNote     *string    `json:"class_schedule_note,omitempty"`
	ClassIsActive         bool       `json:"class_is_active"`
	ClassCreatedAt        time.Time  `json:"class_created_at"`
}

type CreateClassRequest struct {
	ClassName             string     `json:"class_name" validate:"required,min=2,max=120"`
	ClassCode             *string    `json:"class_code" validate:"omitempty,max=40"`
	ClassCurriculumNodeID *uuid.UUID `json:"class_curriculum_node_id" validate:"omitempty"`
	ClassCapacity         *int       `json:"class_capacity" validate:"omitempty,min=1"`
	ClassScheduleNote     *string    `json:"class_schedule_note"`
}

type UpdateClassRequest struct {
	ClassName             *string    `json:"class_name" validate:"omitempty,min=2,max=120"`
	ClassCode             *string    `json:"class_code" validate:"omitempty,max=40"`
	ClassCurriculumNodeID *uuid.UUID `json:"class_curriculum_node_id" validate:"omitempty"`
	ClassCapacity         *int       `json:"class_capacity" validate:"omitempty,min=1"`
	ClassScheduleNote     *string    `json:"class_schedule_note"`
	ClassIsActive         *bool      `json:"class_is_active"`
}

// ============================
// ClassTeacher DTOs
// ============================
type ClassTeacherDTO struct {
	ClassTeacherID        string    `json:"class_teacher_id"`
	ClassTeacherClassID   string    `json:"class_teacher_class_id"`
	ClassTeacherTeacherID string    `json:"class_teacher_teacher_id"`
	ClassTeacherIsPrimary bool      `json:"class_teacher_is_primary"`
	ClassTeacherCreatedAt time.Time `json:"class_teacher_created_at"`
}

type AssignClassTeacherRequest struct {
	ClassTeacherTeacherID uuid.UUID `json:"class_teacher_teacher_id" validate:"required"`
	ClassTeacherIsPrimary bool      `json:"class_teacher_is_primary"`
}

// ============================
// Converters
// ============================
func ToClassDTO(m model.ClassModel) ClassDTO {
	return ClassDTO{
		ClassID:               m.ClassID.String(),
		ClassAcademyID:        m.ClassAcademyID.String(),
		ClassName:             m.ClassName,
		ClassSlug:             m.ClassSlug,
		ClassCode:             m.ClassCode,
		ClassCurriculumNodeID: m.ClassCurriculumNodeID,
		ClassCapacity:         m.ClassCapacity,
		ClassScheduleNote:     m.ClassScheduleNote,
		ClassIsActive:         m.ClassIsActive,
		ClassCreatedAt:        m.ClassCreatedAt,
	}
}

func ToClassTeacherDTO(m model.ClassTeacherModel) ClassTeacherDTO {
	return ClassTeacherDTO{
		ClassTeacherID:        m.ClassTeacherID.String(),
		ClassTeacherClassID:   m.ClassTeacherClassID.String(),
		ClassTeacherTeacherID: m.ClassTeacherTeacherID.String(),
		ClassTeacherIsPrimary: m.ClassTeacherIsPrimary,
		ClassTeacherCreatedAt: m.ClassTeacherCreatedAt,
	}
}
