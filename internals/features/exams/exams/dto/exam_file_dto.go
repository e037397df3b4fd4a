package dto

import (
	"time"

	"gorm.io/datatypes"

	"academylms_backend/internals/features/exams/exams/model"
)

// ============================
// Response DTO
// ============================
type ExamFileDTO struct {
	ExamFileID            string         `json:"exam_file_id"`
	ExamFileExamID        string         `json:"exam_file_exam_id"`
	ExamFileName          string         `json:"exam_file_name"`
	ExamFileKind          string         `json:"exam_file_kind"`
	ExamFileURL           string         `json:"exam_file_url"`
	ExamFileSortOrder     int            `json:"exam_file_sort_order"`
	ExamFileDisplayConfig datatypes.JSON `json:"exam_file_display_config,omitempty"`
	ExamFileCreatedAt     time.Time      `json:"exam_file_created_at"`
}

// ============================
// Request DTOs
// ============================
type CreateExamFileRequest struct {
	ExamFileName          string         `json:"exam_file_name" validate:"required,min=1,max=160"`
	ExamFileKind          string         `json:"exam_file_kind" validate:"required,oneof=pdf audio"`
	ExamFileURL           string         `json:"exam_file_url" validate:"required,url"`
	ExamFileSortOrder     *int           `json:"exam_file_sort_order" validate:"omitempty,min=0"`
	ExamFileDisplayConfig datatypes.JSON `json:"exam_file_display_config"`
}

type UpdateExamFileRequest struct {
	ExamFileName          *string        `json:"exam_file_name" validate:"omitempty,min=1,max=160"`
	ExamFileKind          *string        `json:"exam_file_kind" validate:"omitempty,oneof=pdf audio"`
	ExamFileURL           *string        `json:"exam_file_url" validate:"omitempty,url"`
	ExamFileSortOrder     *int           `json:"exam_file_sort_order" validate:"omitempty,min=0"`
	ExamFileDisplayConfig datatypes.JSON `json:"exam_file_display_config"`
}

// ============================
// Converter
// ============================
func ToExamFileDTO(m model.ExamFileModel) ExamFileDTO {
	return ExamFileDTO{
		ExamFileID:            m.ExamFileID.String(),
		ExamFileExamID:        m.ExamFileExamID.String(),
		ExamFileName:          m.ExamFileName,
		ExamFileKind:          m.ExamFileKind,
		ExamFileURL:           m.ExamFileURL,
		ExamFileSortOrder:     m.ExamFileSortOrder,
		ExamFileDisplayConfig: m.ExamFileDisplayConfig,
		ExamFileCreatedAt:     m.ExamFileCreatedAt,
	}
}
