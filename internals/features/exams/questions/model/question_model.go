package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionModel represents the `exam_questions` table.
type QuestionModel struct {
	QuestionID        uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuestionAcademyID uuid.UUID `json:"question_academy_id" gorm:"column:question_academy_id;type:uuid;not null;index"`
	QuestionExamID    uuid.UUID `json:"question_exam_id" gorm:"column:question_exam_id;type:uuid;not null;index"`

	QuestionNumber int `json:"question_number" gorm:"column:question_number;not null"`

	// multiple_choice | short_answer | essay | listening
	QuestionType string `json:"question_type" gorm:"column:question_type;type:varchar(20);not null"`

	QuestionPrompt string `json:"question_prompt" gorm:"column:question_prompt;type:text;not null"`

	// e.g. {"choices": [{"key": "A", "text": "..."}, ...]}
	QuestionOptions datatypes.JSON `json:"question_options,omitempty" gorm:"column:question_options;type:jsonb"`

	// hidden from students; essays have none
	QuestionAnswerKey *string `json:"question_answer_key,omitempty" gorm:"column:question_answer_key;type:text"`

	QuestionPoints float64 `json:"question_points" gorm:"column:question_points;type:numeric(6,2);not null;default:1"`

	QuestionCreatedAt time.Time  `json:"question_created_at" gorm:"column:question_created_at;not null;autoCreateTime"`
	QuestionUpdatedAt *time.Time `json:"question_updated_at,omitempty" gorm:"column:question_updated_at"`
	QuestionDeletedAt *time.Time `json:"question_deleted_at,omitempty" gorm:"column:question_deleted_at"`
}

func (QuestionModel) TableName() string {
	return "exam_questions"
}
