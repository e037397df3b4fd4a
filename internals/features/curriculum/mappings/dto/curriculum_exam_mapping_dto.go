package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"academylms_backend/internals/features/curriculum/mappings/model"
)

// ============================
// Response DTO
// ============================
type CurriculumExamMappingDTO struct {
	CurriculumExamMappingID           string         `json:"curriculum_exam_mapping_id"`
	CurriculumExamMappingAcademyID    string         `json:"curriculum_exam_mapping_academy_id"`
	CurriculumExamMappingNodeID       string         `json:"curriculum_exam_mapping_node_id"`
	CurriculumExamMappingExamID       string         `json:"curriculum_exam_mapping_exam_id"`
	CurriculumExamMappingType         string         `json:"curriculum_exam_mapping_type"`
	CurriculumExamMappingSlot         int            `json:"curriculum_exam_mapping_slot"`
	CurriculumExamMappingWeight       *float64       `json:"curriculum_exam_mapping_weight,omitempty"`
	CurriculumExamMappingMinScore     *float64       `json:"curriculum_exam_mapping_min_score,omitempty"`
	CurriculumExamMappingPrerequisite datatypes.JSON `json:"curriculum_exam_mapping_prerequisite,omitempty"`
	CurriculumExamMappingCreatedAt    time.Time      `json:"curriculum_exam_mapping_created_at"`
}

// ============================
// Request DTOs
// ============================
type CreateCurriculumExamMappingRequest struct {
	CurriculumExamMappingNodeID       uuid.UUID      `json:"curriculum_exam_mapping_node_id" validate:"required"`
	CurriculumExamMappingExamID       uuid.UUID      `json:"curriculum_exam_mapping_exam_id" validate:"required"`
	CurriculumExamMappingType         string         `json:"curriculum_exam_mapping_type" validate:"required,oneof=placement progress final diagnostic"`
	CurriculumExamMappingSlot         *int           `json:"curriculum_exam_mapping_slot" validate:"omitempty,min=0"`
	CurriculumExamMappingWeight       *float64       `json:"curriculum_exam_mapping_weight" validate:"omitempty,min=0,max=100"`
	CurriculumExamMappingMinScore     *float64       `json:"curriculum_exam_mapping_min_score" validate:"omitempty,min=0,max=100"`
	CurriculumExamMappingPrerequisite datatypes.JSON `json:"curriculum_exam_mapping_prerequisite"`
}

type UpdateCurriculumExamMappingRequest struct {
	CurriculumExamMappingType         *string        `json:"curriculum_exam_mapping_type" validate:"omitempty,oneof=placement progress final diagnostic"`
	CurriculumExamMappingSlot         *int           `json:"curriculum_exam_mapping_slot" validate:"omitempty,min=0"`
	CurriculumExamMappingWeight       *float64       `json:"curriculum_exam_mapping_weight" validate:"omitempty,min=0,max=100"`
	CurriculumExamMappingMinScore     *float64       `json:"curriculum_exam_mapping_min_score" validate:"omitempty,min=0,max=100"`
	CurriculumExamMappingPrerequisite datatypes.JSON `json:"curriculum_exam_mapping_prerequisite"`
}

// ============================
// Converter
// ============================
func ToCurriculumExamMappingDTO(m model.CurriculumExamMappingModel) CurriculumExamMappingDTO {
	return CurriculumExamMappingDTO{
		CurriculumExamMappingID:           m.CurriculumExamMappingID.String(),
		CurriculumExamMappingAcademyID:    m.CurriculumExamMappingAcademyID.String(),
		CurriculumExamMappingNodeID:       m.CurriculumExamMappingNodeID.String(),
		CurriculumExamMappingExamID:       m.CurriculumExamMappingExamID.String(),
		CurriculumExamMappingType:         m.CurriculumExamMappingType,
		CurriculumExamMappingSlot:         m.CurriculumExamMappingSlot,
		CurriculumExamMappingWeight:       m.CurriculumExamMappingWeight,
		CurriculumExamMappingMinScore:     m.CurriculumExamMappingMinScore,
		CurriculumExamMappingPrerequisite: m.CurriculumExamMappingPrerequisite,
		CurriculumExamMappingCreatedAt:    m.CurriculumExamMappingCreatedAt,
	}
}
