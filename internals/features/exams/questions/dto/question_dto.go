package dto

import (
	"time"

	"gorm.io/datatypes"

	"academylms_backend/internals/features/exams/questions/model"
)

// ============================
// Response DTOs
// ============================
type QuestionDTO struct {
	QuestionID        string         `json:"question_id"`
	QuestionExamID    string         `json:"question_exam_id"`
	QuestionNumber    int            `json:"question_number"`
	QuestionType      string         `json:"question_type"`
	QuestionPrompt    string         `json:"question_prompt"`
	QuestionOptions   datatypes.JSON `json:"question_options,omitempty"`
	QuestionAnswerKey *string        `json:"question_answer_key,omitempty"`
	QuestionPoints    float64        `json:"question_points"`
	QuestionCreatedAt time.Time      `json:"question_created_at"`
}

// StudentQuestionDTO strips the answer key for test-taking views.
type StudentQuestionDTO struct {
	QuestionID      string         `json:"question_id"`
	QuestionExamID  string         `json:"question_exam_id"`
	QuestionNumber  int            `json:"question_number"`
	QuestionType    string         `json:"question_type"`
	QuestionPrompt  string         `json:"question_prompt"`
	QuestionOptions datatypes.JSON `json:"question_options,omitempty"`
	QuestionPoints  float64        `json:"question_points"`
}

// ============================
// Request DTOs
// ============================
type CreateQuestionRequest struct {
	QuestionNumber    *int           `json:"question_number" validate:"omitempty,min=1"`
	QuestionType      string         `json:"question_type" validate:"required,oneof=multiple_choice short_answer essay listening"`
	QuestionPrompt    string         `json:"question_prompt" validate:"required,min=1"`
	QuestionOptions   datatypes.JSON `json:"question_options"`
	QuestionAnswerKey *string        `json:"question_answer_key"`
	QuestionPoints    *float64       `json:"question_points" validate:"omitempty,min=0"`
}

type UpdateQuestionRequest struct {
	QuestionNumber    *int           `json:"question_number" validate:"omitempty,min=1"`
	QuestionType      *string        `json:"question_type" validate:"omitempty,oneof=multiple_choice short_answer essay listening"`
	QuestionPrompt    *string        `json:"question_prompt" validate:"omitempty,min=1"`
	QuestionOptions   datatypes.JSON `json:"question_options"`
	QuestionAnswerKey *string        `json:"question_answer_key"`
	QuestionPoints    *float64       `json:"question_points" validate:"omitempty,min=0"`
}

// ============================
// Converters
// ============================
func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:        m.QuestionID.String(),
		QuestionExamID:    m.QuestionExamID.String(),
		QuestionNumber:    m.QuestionNumber,
		QuestionType:      m.QuestionType,
		QuestionPrompt:    m.QuestionPrompt,
		QuestionOptions:   m.QuestionOptions,
		QuestionAnswerKey: m.QuestionAnswerKey,
		QuestionPoints:    m.QuestionPoints,
		QuestionCreatedAt: m.QuestionCreatedAt,
	}
}

func ToStudentQuestionDTO(m model.QuestionModel) StudentQuestionDTO {
	return StudentQuestionDTO{
		QuestionID:      m.QuestionID.String(),
		QuestionExamID:  m.QuestionExamID.String(),
		QuestionNumber:  m.QuestionNumber,
		QuestionType:    m.QuestionType,
		QuestionPrompt:  m.QuestionPrompt,
		QuestionOptions: m.QuestionOptions,
		QuestionPoints:  m.QuestionPoints,
	}
}
