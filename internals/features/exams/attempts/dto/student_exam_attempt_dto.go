package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"academylms_backend/internals/features/exams/attempts/model"
)

// ============================
// Response DTOs
// ============================
type StudentExamAttemptDTO struct {
	StudentExamAttemptID            string     `json:"student_exam_attempt_id"`
	StudentExamAttemptAcademyID     string     `json:"student_exam_attempt_academy_id"`
	StudentExamAttemptStudentID     string     `json:"student_exam_attempt_student_id"`
	StudentExamAttemptExamID        string     `json:"student_exam_attempt_exam_id"`
	StudentExamAttemptAssignmentID  *uuid.UUID `json:"student_exam_attempt_assignment_id,omitempty"`
	StudentExamAttemptSessionID     *uuid.UUID `json:"student_exam_attempt_session_id,omitempty"`
	StudentExamAttemptNumber        int        `json:"student_exam_attempt_number"`
	StudentExamAttemptStatus        string     `json:"student_exam_attempt_status"`
	StudentExamAttemptStartedAt     time.Time  `json:"student_exam_attempt_started_at"`
	StudentExamAttemptSubmittedAt   *time.Time `json:"student_exam_attempt_submitted_at,omitempty"`
	StudentExamAttemptRawScore      float64    `json:"student_exam_attempt_raw_score"`
	StudentExamAttemptMaxScore      float64    `json:"student_exam_attempt_max_score"`
	StudentExamAttemptAnsweredCount int        `json:"student_exam_attempt_answered_count"`
	StudentExamAttemptPercentage    *float64   `json:"student_exam_attempt_percentage,omitempty"`
	StudentExamAttemptPassed        *bool      `json:"student_exam_attempt_passed,omitempty"`
}

type StudentAnswerDTO struct {
	StudentAnswerID           string         `json:"student_answer_id"`
	StudentAnswerAttemptID    string         `json:"student_answer_attempt_id"`
	StudentAnswerQuestionID   string         `json:"student_answer_question_id"`
	StudentAnswerPayload      datatypes.JSON `json:"student_answer_payload,omitempty"`
	StudentAnswerPointsEarned *float64       `json:"student_answer_points_earned,omitempty"`
	StudentAnswerIsCorrect    *bool          `json:"student_answer_is_correct,omitempty"`
	StudentAnswerCreatedAt    time.Time      `json:"student_answer_created_at"`
}

// ============================
// Request DTOs
// ============================
type StartAttemptRequest struct {
	StudentExamAttemptExamID       uuid.UUID  `json:"student_exam_attempt_exam_id" validate:"required"`
	StudentExamAttemptAssignmentID *uuid.UUID `json:"student_exam_attempt_assignment_id"`
	StudentExamAttemptSessionID    *uuid.UUID `json:"student_exam_attempt_session_id"`
}

// SaveAnswerRequest is the auto-save payload; the same endpoint creates
// and overwrites.
type SaveAnswerRequest struct {
	StudentAnswerQuestionID uuid.UUID      `json:"student_answer_question_id" validate:"required"`
	StudentAnswerPayload    datatypes.JSON `json:"student_answer_payload" validate:"required"`
}

// GradeAnswerRequest is the teacher-side manual grade.
type GradeAnswerRequest struct {
	StudentAnswerPointsEarned float64 `json:"student_answer_points_earned" validate:"min=0"`
	StudentAnswerIsCorrect    *bool   `json:"student_answer_is_correct"`
}

// ============================
// Converters
// ============================
func ToStudentExamAttemptDTO(m model.StudentExamAttemptModel) StudentExamAttemptDTO {
	return StudentExamAttemptDTO{
		StudentExamAttemptID:            m.StudentExamAttemptID.String(),
		StudentExamAttemptAcademyID:     m.StudentExamAttemptAcademyID.String(),
		StudentExamAttemptStudentID:     m.StudentExamAttemptStudentID.String(),
		StudentExamAttemptExamID:        m.StudentExamAttemptExamID.String(),
		StudentExamAttemptAssignmentID:  m.StudentExamAttemptAssignmentID,
		StudentExamAttemptSessionID:     m.StudentExamAttemptSessionID,
		StudentExamAttemptNumber:        m.StudentExamAttemptNumber,
		StudentExamAttemptStatus:        m.StudentExamAttemptStatus,
		StudentExamAttemptStartedAt:     m.StudentExamAttemptStartedAt,
		StudentExamAttemptSubmittedAt:   m.StudentExamAttemptSubmittedAt,
		StudentExamAttemptRawScore:      m.StudentExamAttemptRawScore,
		StudentExamAttemptMaxScore:      m.StudentExamAttemptMaxScore,
		StudentExamAttemptAnsweredCount: m.StudentExamAttemptAnsweredCount,
		StudentExamAttemptPercentage:    m.StudentExamAttemptPercentage,
		StudentExamAttemptPassed:        m.StudentExamAttemptPassed,
	}
}

func ToStudentAnswerDTO(m model.StudentAnswerModel) StudentAnswerDTO {
	return StudentAnswerDTO{
		StudentAnswerID:           m.StudentAnswerID.String(),
		StudentAnswerAttemptID:    m.StudentAnswerAttemptID.String(),
		StudentAnswerQuestionID:   m.StudentAnswerQuestionID.String(),
		StudentAnswerPayload:      m.StudentAnswerPayload,
		StudentAnswerPointsEarned: m.StudentAnswerPointsEarned,
		StudentAnswerIsCorrect:    m.StudentAnswerIsCorrect,
		StudentAnswerCreatedAt:    m.StudentAnswerCreatedAt,
	}
}
