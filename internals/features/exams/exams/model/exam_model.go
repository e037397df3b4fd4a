package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ExamModel represents the `exams` table.
type ExamModel struct {
	ExamID        uuid.UUID `json:"exam_id" gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ExamAcademyID uuid.UUID `json:"exam_academy_id" gorm:"column:exam_academy_id;type:uuid;not null;index"`

	ExamTitle       string  `json:"exam_title" gorm:"column:exam_title;type:varchar(160);not null"`
	ExamDescription *string `json:"exam_description,omitempty" gorm:"column:exam_description;type:text"`

	// placement | progress | final | diagnostic | quiz
	ExamType string `json:"exam_type" gorm:"column:exam_type;type:varchar(20);not null;default:'quiz'"`

	ExamTotalPoints float64 `json:"exam_total_points" gorm:"column:exam_total_points;type:numeric(7,2);not null;default:0"`

	// NULL -> scoring falls back to the 60% default threshold
	ExamPassingScore *float64 `json:"exam_passing_score,omitempty" gorm:"column:exam_passing_score;type:numeric(5,2)"`

	// NULL -> untimed
	ExamDurationMinutes *int `json:"exam_duration_minutes,omitempty" gorm:"column:exam_duration_minutes"`

	// NULL -> unlimited attempts
	ExamAttemptLimit *int `json:"exam_attempt_limit,omitempty" gorm:"column:exam_attempt_limit"`

	ExamShuffleQuestions bool `json:"exam_shuffle_questions" gorm:"column:exam_shuffle_questions;not null;default:false"`

	ExamTags pq.StringArray `json:"exam_tags,omitempty" gorm:"column:exam_tags;type:text[]"`

	// draft | published | archived
	ExamStatus string `json:"exam_status" gorm:"column:exam_status;type:varchar(20);not null;default:'draft'"`

	ExamCreatedAt time.Time  `json:"exam_created_at" gorm:"column:exam_created_at;not null;autoCreateTime"`
	ExamUpdatedAt *time.Time `json:"exam_updated_at,omitempty" gorm:"column:exam_updated_at"`
	ExamDeletedAt *time.Time `json:"exam_deleted_at,omitempty" gorm:"column:exam_deleted_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}
