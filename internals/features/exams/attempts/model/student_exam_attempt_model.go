package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttemptStatusInProgress    = "in_progress"
	AttemptStatusSubmitted     = "submitted"
	AttemptStatusAutoSubmitted = "auto_submitted"
	AttemptStatusAbandoned     = "abandoned"
)

// StudentExamAttemptModel represents the `student_exam_attempts` table.
// Lifecycle: in_progress -> submitted | auto_submitted | abandoned (all
// terminal).
//
// One live attempt per (academy, student, exam, attempt_number):
//
//	CREATE UNIQUE INDEX uq_student_exam_attempts_live
//	ON student_exam_attempts (student_exam_attempt_academy_id,
//	    student_exam_attempt_student_id,
//	    student_exam_attempt_exam_id,
//	    student_exam_attempt_number)
//	WHERE student_exam_attempt_deleted_at IS NULL;
type StudentExamAttemptModel struct {
	StudentExamAttemptID        uuid.UUID `json:"student_exam_attempt_id" gorm:"column:student_exam_attempt_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentExamAttemptAcademyID uuid.UUID `json:"student_exam_attempt_academy_id" gorm:"column:student_exam_attempt_academy_id;type:uuid;not null;index"`
	StudentExamAttemptStudentID uuid.UUID `json:"student_exam_attempt_student_id" gorm:"column:student_exam_attempt_student_id;type:uuid;not null;index"`
	StudentExamAttemptExamID    uuid.UUID `json:"student_exam_attempt_exam_id" gorm:"column:student_exam_attempt_exam_id;type:uuid;not null;index"`

	StudentExamAttemptAssignmentID *uuid.UUID `json:"student_exam_attempt_assignment_id,omitempty" gorm:"column:student_exam_attempt_assignment_id;type:uuid;index"`
	StudentExamAttemptSessionID    *uuid.UUID `json:"student_exam_attempt_session_id,omitempty" gorm:"column:student_exam_attempt_session_id;type:uuid;index"`

	// 1-based, per (student, exam)
	StudentExamAttemptNumber int `json:"student_exam_attempt_number" gorm:"column:student_exam_attempt_number;not null;default:1"`

	StudentExamAttemptStatus string `json:"student_exam_attempt_status" gorm:"column:student_exam_attempt_status;type:varchar(20);not null;default:'in_progress'"`

	StudentExamAttemptStartedAt time.Time `json:"student_exam_attempt_started_at" gorm:"column:student_exam_attempt_started_at;not null;autoCreateTime"`

	// set on submitted/auto_submitted only; abandoned attempts keep NULL
	StudentExamAttemptSubmittedAt *time.Time `json:"student_exam_attempt_submitted_at,omitempty" gorm:"column:student_exam_attempt_submitted_at"`

	StudentExamAttemptRawScore      float64  `json:"student_exam_attempt_raw_score" gorm:"column:student_exam_attempt_raw_score;type:numeric(7,2);not null;default:0"`
	StudentExamAttemptMaxScore      float64  `json:"student_exam_attempt_max_score" gorm:"column:student_exam_attempt_max_score;type:numeric(7,2);not null;default:0"`
	StudentExamAttemptAnsweredCount int      `json:"student_exam_attempt_answered_count" gorm:"column:student_exam_attempt_answered_count;not null;default:0"`
	StudentExamAttemptPercentage    *float64 `json:"student_exam_attempt_percentage,omitempty" gorm:"column:student_exam_attempt_percentage;type:numeric(5,2)"`
	StudentExamAttemptPassed        *bool    `json:"student_exam_attempt_passed,omitempty" gorm:"column:student_exam_attempt_passed"`

	StudentExamAttemptCreatedAt time.Time  `json:"student_exam_attempt_created_at" gorm:"column:student_exam_attempt_created_at;not null;autoCreateTime"`
	StudentExamAttemptUpdatedAt *time.Time `json:"student_exam_attempt_updated_at,omitempty" gorm:"column:student_exam_attempt_updated_at"`
	StudentExamAttemptDeletedAt *time.Time `json:"student_exam_attempt_deleted_at,omitempty" gorm:"column:student_exam_attempt_deleted_at"`
}

func (StudentExamAttemptModel) TableName() string {
	return "student_exam_attempts"
}
