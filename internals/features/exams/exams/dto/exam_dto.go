package dto

import (
	"time"

	"github.com/lib/pq"

	"academylms_backend/internals/features/exams/exams/model"
)

// ============================
// Response DTO
// ============================
type ExamDTO struct {
	ExamID               string         `json:"exam_id"`
	ExamAcademyID        string         `json:"exam_academy_id"`
	ExamTitle            string         `json:"exam_title"`
	ExamDescription      *string        `json:"exam_description,omitempty"`
	ExamType             string         `json:"exam_type"`
	ExamTotalPoints      float64        `json:"exam_total_points"`
	ExamPassingScore     *float64       `json:"exam_passing_score,omitempty"`
	ExamDurationMinutes  *int           `json:"exam_duration_minutes,omitempty"`
	ExamAttemptLimit     *int           `json:"exam_attempt_limit,omitempty"`
	ExamShuffleQuestions bool           `json:"exam_shuffle_questions"`
	ExamTags             pq.StringArray `json:"exam_tags,omitempty"`
	ExamStatus           string         `json:"exam_status"`
	ExamCreatedAt        time.Time      `json:"exam_created_at"`
}

// ============================
// Request DTOs
// ============================
type CreateExamRequest struct {
	ExamTitle            string   `json:"exam_title" validate:"required,min=1,max=160"`
	ExamDescription      *string  `json:"exam_description"`
	ExamType             string   `json:"exam_type" validate:"required,oneof=placement progress final diagnostic quiz"`
	ExamPassingScore     *float64 `json:"exam_passing_score" validate:"omitempty,min=0,max=100"`
	ExamDurationMinutes  *int     `json:"exam_duration_minutes" validate:"omitempty,min=1"`
	ExamAttemptLimit     *int     `json:"exam_attempt_limit" validate:"omitempty,min=1"`
	ExamShuffleQuestions *bool    `json:"exam_shuffle_questions"`
	ExamTags             []string `json:"exam_tags" validate:"omitempty,dive,min=1,max=40"`
}

type UpdateExamRequest struct {
	ExamTitle            *string  `json:"exam_title" validate:"omitempty,min=1,max=160"`
	ExamDescription      *string  `json:"exam_description"`
	ExamType             *string  `json:"exam_type" validate:"omitempty,oneof=placement progress final diagnostic quiz"`
	ExamPassingScore     *float64 `json:"exam_passing_score" validate:"omitempty,min=0,max=100"`
	ExamDurationMinutes  *int     `json:"exam_duration_minutes" validate:"omitempty,min=1"`
	ExamAttemptLimit     *int     `json:"exam_attempt_limit" validate:"omitempty,min=1"`
	ExamShuffleQuestions *bool    `json:"exam_shuffle_questions"`
	ExamTags             []string `json:"exam_tags" validate:"omitempty,dive,min=1,max=40"`
	ExamStatus           *string  `json:"exam_status" validate:"omitempty,oneof=draft published archived"`
}

// ============================
// Converter
// ============================
func ToExamDTO(m model.ExamModel) ExamDTO {
	return ExamDTO{
		ExamID:               m.ExamID.String(),
		ExamAcademyID:        m.ExamAcademyID.String(),
		ExamTitle:            m.ExamTitle,
		ExamDescription:      m.ExamDescription,
		ExamType:             m.ExamType,
		ExamTotalPoints:      m.ExamTotalPoints,
		ExamPassingScore:     m.ExamPassingScore,
		ExamDurationMinutes:  m.ExamDurationMinutes,
		ExamAttemptLimit:     m.ExamAttemptLimit,
		ExamShuffleQuestions: m.ExamShuffleQuestions,
		ExamTags:             m.ExamTags,
		ExamStatus:           m.ExamStatus,
		ExamCreatedAt:        m.ExamCreatedAt,
	}
}
