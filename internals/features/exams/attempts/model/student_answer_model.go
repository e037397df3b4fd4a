package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudentAnswerModel represents the `student_answers` table.
//
// One live answer per (academy, attempt, question):
//
//	CREATE UNIQUE INDEX uq_student_answers_live
//	ON student_answers (student_answer_academy_id,
//	    student_answer_attempt_id,
//	    student_answer_question_id)
//	WHERE student_answer_deleted_at IS NULL;
type StudentAnswerModel struct {
	StudentAnswerID         uuid.UUID `json:"student_answer_id" gorm:"column:student_answer_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentAnswerAcademyID  uuid.UUID `json:"student_answer_academy_id" gorm:"column:student_answer_academy_id;type:uuid;not null;index"`
	StudentAnswerAttemptID  uuid.UUID `json:"student_answer_attempt_id" gorm:"column:student_answer_attempt_id;type:uuid;not null;index"`
	StudentAnswerQuestionID uuid.UUID `json:"student_answer_question_id" gorm:"column:student_answer_question_id;type:uuid;not null;index"`

	// e.g. {"selected": "B"} or {"text": "..."}
	StudentAnswerPayload datatypes.JSON `json:"student_answer_payload,omitempty" gorm:"column:student_answer_payload;type:jsonb"`

	// NULL until graded (auto or by a teacher)
	StudentAnswerPointsEarned *float64 `json:"student_answer_points_earned,omitempty" gorm:"column:student_answer_points_earned;type:numeric(6,2)"`

	StudentAnswerIsCorrect *bool `json:"student_answer_is_correct,omitempty" gorm:"column:student_answer_is_correct"`

	StudentAnswerCreatedAt time.Time  `json:"student_answer_created_at" gorm:"column:student_answer_created_at;not null;autoCreateTime"`
	StudentAnswerUpdatedAt *time.Time `json:"student_answer_updated_at,omitempty" gorm:"column:student_answer_updated_at"`
	StudentAnswerDeletedAt *time.Time `json:"student_answer_deleted_at,omitempty" gorm:"column:student_answer_deleted_at"`
}

func (StudentAnswerModel) TableName() string {
	return "student_answers"
}
