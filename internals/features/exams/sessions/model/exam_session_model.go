package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamSessionModel represents the `exam_sessions` table - one proctored
// run of an assignment. Lifecycle:
//
//	scheduled -> active -> paused -> completed
//	any non-terminal state -> cancelled
type ExamSessionModel struct {
	ExamSessionID           uuid.UUID `json:"exam_session_id" gorm:"column:exam_session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ExamSessionAcademyID    uuid.UUID `json:"exam_session_academy_id" gorm:"column:exam_session_academy_id;type:uuid;not null;index"`
	ExamSessionAssignmentID uuid.UUID `json:"exam_session_assignment_id" gorm:"column:exam_session_assignment_id;type:uuid;not null;index"`
	ExamSessionExamID       uuid.UUID `json:"exam_session_exam_id" gorm:"column:exam_session_exam_id;type:uuid;not null;index"`
	ExamSessionClassID      uuid.UUID `json:"exam_session_class_id" gorm:"column:exam_session_class_id;type:uuid;not null;index"`

	// supervising teacher, optional
	ExamSessionTeacherID *uuid.UUID `json:"exam_session_teacher_id,omitempty" gorm:"column:exam_session_teacher_id;type:uuid"`

	ExamSessionName *string `json:"exam_session_name,omitempty" gorm:"column:exam_session_name;type:varchar(120)"`

	// scheduled | active | paused | completed | cancelled
	ExamSessionStatus string `json:"exam_session_status" gorm:"column:exam_session_status;type:varchar(20);not null;default:'scheduled'"`

	ExamSessionScheduledAt *time.Time `json:"exam_session_scheduled_at,omitempty" gorm:"column:exam_session_scheduled_at"`
	ExamSessionStartedAt   *time.Time `json:"exam_session_started_at,omitempty" gorm:"column:exam_session_started_at"`
	ExamSessionEndedAt     *time.Time `json:"exam_session_ended_at,omitempty" gorm:"column:exam_session_ended_at"`

	// aggregates, recomputed on attempt writes
	ExamSessionStudentsStarted   int      `json:"exam_session_students_started" gorm:"column:exam_session_students_started;not null;default:0"`
	ExamSessionStudentsSubmitted int      `json:"exam_session_students_submitted" gorm:"column:exam_session_students_submitted;not null;default:0"`
	ExamSessionAverageScore      *float64 `json:"exam_session_average_score,omitempty" gorm:"column:exam_session_average_score;type:numeric(5,2)"`

	ExamSessionCreatedAt time.Time  `json:"exam_session_created_at" gorm:"column:exam_session_created_at;not null;autoCreateTime"`
	ExamSessionUpdatedAt *time.Time `json:"exam_session_updated_at,omitempty" gorm:"column:exam_session_updated_at"`
	ExamSessionDeletedAt *time.Time `json:"exam_session_deleted_at,omitempty" gorm:"column:exam_session_deleted_at"`
}

func (ExamSessionModel) TableName() string {
	return "exam_sessions"
}
