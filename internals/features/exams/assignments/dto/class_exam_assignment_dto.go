package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"academylms_backend/internals/features/exams/assignments/model"
)

// ============================
// Response DTO
// ============================
type ClassExamAssignmentDTO struct {
	ClassExamAssignmentID             string         `json:"class_exam_assignment_id"`
	ClassExamAssignmentAcademyID      string         `json:"class_exam_assignment_academy_id"`
	ClassExamAssignmentClassID        string         `json:"class_exam_assignment_class_id"`
	ClassExamAssignmentExamID         string         `json:"class_exam_assignment_exam_id"`
	ClassExamAssignmentTeacherID      *uuid.UUID     `json:"class_exam_assignment_teacher_id,omitempty"`
	ClassExamAssignmentAssignedAt     time.Time      `json:"class_exam_assignment_assigned_at"`
	ClassExamAssignmentDueAt          *time.Time     `json:"class_exam_assignment_due_at,omitempty"`
	ClassExamAssignmentAvailableFrom  *time.Time     `json:"class_exam_assignment_available_from,omitempty"`
	ClassExamAssignmentAvailableUntil *time.Time     `json:"class_exam_assignment_available_until,omitempty"`
	ClassExamAssignmentConfig         datatypes.JSON `json:"class_exam_assignment_config,omitempty"`
	ClassExamAssignmentWeight         *float64       `json:"class_exam_assignment_weight,omitempty"`
	ClassExamAssignmentCategory       *string        `json:"class_exam_assignment_category,omitempty"`
	ClassExamAssignmentCreatedAt      time.Time      `json:"class_exam_assignment_created_at"`
}

// ============================
// Request DTOs
// ============================
type CreateClassExamAssignmentRequest struct {
	ClassExamAssignmentClassID        uuid.UUID      `json:"class_exam_assignment_class_id" validate:"required"`
	ClassExamAssignmentExamID         uuid.UUID      `json:"class_exam_assignment_exam_id" validate:"required"`
	ClassExamAssignmentTeacherID      *uuid.UUID     `json:"class_exam_assignment_teacher_id"`
	ClassExamAssignmentDueAt          *time.Time     `json:"class_exam_assignment_due_at"`
	ClassExamAssignmentAvailableFrom  *time.Time     `json:"class_exam_assignment_available_from"`
	ClassExamAssignmentAvailableUntil *time.Time     `json:"class_exam_assignment_available_until"`
	ClassExamAssignmentConfig         datatypes.JSON `json:"class_exam_assignment_config"`
	ClassExamAssignmentWeight         *float64       `json:"class_exam_assignment_weight" validate:"omitempty,min=0,max=100"`
	ClassExamAssignmentCategory       *string        `json:"class_exam_assignment_category" validate:"omitempty,max=40"`
}

type UpdateClassExamAssignmentRequest struct {
	ClassExamAssignmentTeacherID      *uuid.UUID     `json:"class_exam_assignment_teacher_id"`
	ClassExamAssignmentDueAt          *time.Time     `json:"class_exam_assignment_due_at"`
	ClassExamAssignmentAvailableFrom  *time.Time     `json:"class_exam_assignment_available_from"`
	ClassExamAssignmentAvailableUntil *time.Time     `json:"class_exam_assignment_available_until"`
	ClassExamAssignmentConfig         datatypes.JSON `json:"class_exam_assignment_config"`
	ClassExamAssignmentWeight         *float64       `json:"class_exam_assignment_weight" validate:"omitempty,min=0,max=100"`
	ClassExamAssignmentCategory       *string        `json:"class_exam_assignment_category" validate:"omitempty,max=40"`
}

// ============================
// Converter
// ============================
func ToClassExamAssignmentDTO(m model.ClassExamAssignmentModel) ClassExamAssignmentDTO {
	return ClassExamAssignmentDTO{
		ClassExamAssignmentID:             m.ClassExamAssignmentID.String(),
		ClassExamAssignmentAcademyID:      m.ClassExamAssignmentAcademyID.String(),
		ClassExamAssignmentClassID:        m.ClassExamAssignmentClassID.String(),
		ClassExamAssignmentExamID:         m.ClassExamAssignmentExamID.String(),
		ClassExamAssignmentTeacherID:      m.ClassExamAssignmentTeacherID,
		ClassExamAssignmentAssignedAt:     m.ClassExamAssignmentAssignedAt,
		ClassExamAssignmentDueAt:          m.ClassExamAssignmentDueAt,
		ClassExamAssignmentAvailableFrom:  m.ClassExamAssignmentAvailableFrom,
		ClassExamAssignmentAvailableUntil: m.ClassExamAssignmentAvailableUntil,
		ClassExamAssignmentConfig:         m.ClassExamAssignmentConfig,
		ClassExamAssignmentWeight:         m.ClassExamAssignmentWeight,
		ClassExamAssignmentCategory:       m.ClassExamAssignmentCategory,
		ClassExamAssignmentCreatedAt:      m.ClassExamAssignmentCreatedAt,
	}
}
