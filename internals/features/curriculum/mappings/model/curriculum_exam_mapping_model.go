package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CurriculumExamMappingModel represents the `curriculum_exam_mappings`
// table - attaches an exam to a curriculum node in a role (placement,
// progress, final, diagnostic).
//
// One live mapping per (academy, node, exam, type):
//
//	CREATE UNIQUE INDEX uq_curriculum_exam_mappings_live
//	ON curriculum_exam_mappings (curriculum_exam_mapping_academy_id,
//	    curriculum_exam_mapping_node_id,
//	    curriculum_exam_mapping_exam_id,
//	    curriculum_exam_mapping_type)
//	WHERE curriculum_exam_mapping_deleted_at IS NULL;
type CurriculumExamMappingModel struct {
	CurriculumExamMappingID        uuid.UUID `json:"curriculum_exam_mapping_id" gorm:"column:curriculum_exam_mapping_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CurriculumExamMappingAcademyID uuid.UUID `json:"curriculum_exam_mapping_academy_id" gorm:"column:curriculum_exam_mapping_academy_id;type:uuid;not null;index"`
	CurriculumExamMappingNodeID    uuid.UUID `json:"curriculum_exam_mapping_node_id" gorm:"column:curriculum_exam_mapping_node_id;type:uuid;not null;index"`
	CurriculumExamMappingExamID    uuid.UUID `json:"curriculum_exam_mapping_exam_id" gorm:"column:curriculum_exam_mapping_exam_id;type:uuid;not null;index"`

	// placement | progress | final | diagnostic
	CurriculumExamMappingType string `json:"curriculum_exam_mapping_type" gorm:"column:curriculum_exam_mapping_type;type:varchar(20);not null"`

	// position within the node's exam sequence
	CurriculumExamMappingSlot int `json:"curriculum_exam_mapping_slot" gorm:"column:curriculum_exam_mapping_slot;not null;default:0"`

	// contribution to the node's aggregate score, 0..100
	CurriculumExamMappingWeight *float64 `json:"curriculum_exam_mapping_weight,omitempty" gorm:"column:curriculum_exam_mapping_weight;type:numeric(5,2)"`

	// minimum percentage required to count the node as passed via this exam
	CurriculumExamMappingMinScore *float64 `json:"curriculum_exam_mapping_min_score,omitempty" gorm:"column:curriculum_exam_mapping_min_score;type:numeric(5,2)"`

	// e.g. {"requires_mapping_ids": [...], "min_attempts": 1}
	CurriculumExamMappingPrerequisite datatypes.JSON `json:"curriculum_exam_mapping_prerequisite,omitempty" gorm:"column:curriculum_exam_mapping_prerequisite;type:jsonb"`

	CurriculumExamMappingCreatedAt time.Time  `json:"curriculum_exam_mapping_created_at" gorm:"column:curriculum_exam_mapping_created_at;not null;autoCreateTime"`
	CurriculumExamMappingUpdatedAt *time.Time `json:"curriculum_exam_mapping_updated_at,omitempty" gorm:"column:curriculum_exam_mapping_updated_at"`
	CurriculumExamMappingDeletedAt *time.Time `json:"curriculum_exam_mapping_deleted_at,omitempty" gorm:"column:curriculum_exam_mapping_deleted_at"`
}

func (CurriculumExamMappingModel) TableName() string {
	return "curriculum_exam_mappings"
}
