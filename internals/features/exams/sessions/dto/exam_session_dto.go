package dto

import (
	"time"

	"github.com/google/uuid"

	"academylms_backend/internals/features/exams/sessions/model"
)

// ============================
// Response DTO
// ============================
type ExamSessionDTO struct {
	ExamSessionID                string     `json:"exam_session_id"`
	ExamSessionAcademyID         string     `json:"exam_session_academy_id"`
	ExamSessionAssignmentID      string     `json:"exam_session_assignment_id"`
	ExamSessionExamID            string     `json:"exam_session_exam_id"`
	ExamSessionClassID           string     `json:"exam_session_class_id"`
	ExamSessionTeacherID         *uuid.UUID `json:"exam_session_teacher_id,omitempty"`
	ExamSessionName              *string    `json:"exam_session_name,omitempty"`
	ExamSessionStatus            string     `json:"exam_session_status"`
	ExamSessionScheduledAt       *time.Time `json:"exam_session_scheduled_at,omitempty"`
	ExamSessionStartedAt         *time.Time `json:"exam_session_started_at,omitempty"`
	ExamSessionEndedAt           *time.Time `json:"exam_session_ended_at,omitempty"`
	ExamSessionStudentsStarted   int        `json:"exam_session_students_started"`
	ExamSessionStudentsSubmitted int        `json:"exam_session_students_submitted"`
	ExamSessionAverageScore      *float64   `json:"exam_session_average_score,omitempty"`
	ExamSessionCreatedAt         time.Time  `json:"exam_session_created_at"`
}

// ============================
// Request DTOs
// ============================
type CreateExamSessionRequest struct {
	ExamSessionAssignmentID uuid.UUID  `json:"exam_session_assignment_id" validate:"required"`
	ExamSessionTeacherID    *uuid.UUID `json:"exam_session_teacher_id"`
	ExamSessionName         *string    `json:"exam_session_name" validate:"omitempty,min=1,max=120"`
	ExamSessionScheduledAt  *time.Time `json:"exam_session_scheduled_at"`
}

type UpdateExamSessionRequest struct {
	ExamSessionTeacherID   *uuid.UUID `json:"exam_session_teacher_id"`
	ExamSessionName        *string    `json:"exam_session_name" validate:"omitempty,min=1,max=120"`
	ExamSessionScheduledAt *time.Time `json:"exam_session_scheduled_at"`
}

type ChangeExamSessionStatusRequest struct {
	ExamSessionStatus string `json:"exam_session_status" validate:"required,oneof=scheduled active paused completed cancelled"`
}

// ============================
// Converter
// ============================
func ToExamSessionDTO(m model.ExamSessionModel) ExamSessionDTO {
	return ExamSessionDTO{
		ExamSessionID:                m.ExamSessionID.String(),
		ExamSessionAcademyID:         m.ExamSessionAcademyID.String(),
		ExamSessionAssignmentID:      m.ExamSessionAssignmentID.String(),
		ExamSessionExamID:            m.ExamSessionExamID.String(),
		ExamSessionClassID:           m.ExamSessionClassID.String(),
		ExamSessionTeacherID:         m.ExamSessionTeacherID,
		ExamSessionName:              m.ExamSessionName,
		ExamSessionStatus:            m.ExamSessionStatus,
		ExamSessionScheduledAt:       m.ExamSessionScheduledAt,
		ExamSessionStartedAt:         m.ExamSessionStartedAt,
		ExamSessionEndedAt:           m.ExamSessionEndedAt,
		ExamSessionStudentsStarted:   m.ExamSessionStudentsStarted,
		ExamSessionStudentsSubmitted: m.ExamSessionStudentsSubmitted,
		ExamSessionAverageScore:      m.ExamSessionAverageScore,
		ExamSessionCreatedAt:         m.ExamSessionCreatedAt,
	}
}
