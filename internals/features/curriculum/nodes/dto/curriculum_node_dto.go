package dto

import (
	"time"

	"github.com/google/uuid"

	"academylms_backend/internals/features/curriculum/nodes/model"
	"academylms_backend/internals/features/curriculum/nodes/service"
)

// ============================
// Response DTOs
// ============================
type CurriculumNodeDTO struct {
	CurriculumNodeID             string     `json:"curriculum_node_id"`
	CurriculumNodeAcademyID      string     `json:"curriculum_node_academy_id"`
	CurriculumNodeParentID       *uuid.UUID `json:"curriculum_node_parent_id,omitempty"`
	CurriculumNodeDepth          int        `json:"curriculum_node_depth"`
	CurriculumNodeSortOrder      int        `json:"curriculum_node_sort_order"`
	CurriculumNodeName           string     `json:"curriculum_node_name"`
	CurriculumNodeCode           *string    `json:"curriculum_node_code,omitempty"`
	CurriculumNodeDescription    *string    `json:"curriculum_node_description,omitempty"`
	CurriculumNodeTargetGradeMin *int       `json:"curriculum_node_target_grade_min,omitempty"`
	CurriculumNodeTargetGradeMax *int       `json:"curriculum_node_target_grade_max,omitempty"`
	CurriculumNodeCapacity       *int       `json:"curriculum_node_capacity,omitempty"`
	CurriculumNodeCreatedAt      time.Time  `json:"curriculum_node_created_at"`
}

// CurriculumNodePathDTO is the node plus its materialized path.
type CurriculumNodePathDTO struct {
	CurriculumNodeDTO
	Path service.Path `json:"path"`
}

// ============================
// Request DTOs
// ============================
type CreateCurriculumNodeRequest struct {
	CurriculumNodeParentID       *uuid.UUID `json:"curriculum_node_parent_id" validate:"omitempty"`
	CurriculumNodeName           string     `json:"curriculum_node_name" validate:"required,min=1,max=120"`
	CurriculumNodeCode           *string    `json:"curriculum_node_code" validate:"omitempty,max=40"`
	CurriculumNodeDescription    *string    `json:"curriculum_node_description"`
	CurriculumNodeSortOrder      *int       `json:"curriculum_node_sort_order" validate:"omitempty,min=0"`
	CurriculumNodeTargetGradeMin *int       `json:"curriculum_node_target_grade_min" validate:"omitempty,min=1,max=12"`
	CurriculumNodeTargetGradeMax *int       `json:"curriculum_node_target_grade_max" validate:"omitempty,min=1,max=12"`
	CurriculumNodeCapacity       *int       `json:"curriculum_node_capacity" validate:"omitempty,min=1"`
}

type UpdateCurriculumNodeRequest struct {
	CurriculumNodeName           *string `json:"curriculum_node_name" validate:"omitempty,min=1,max=120"`
	CurriculumNodeCode           *string `json:"curriculum_node_code" validate:"omitempty,max=40"`
	CurriculumNodeDescription    *string `json:"curriculum_node_description"`
	CurriculumNodeSortOrder      *int    `json:"curriculum_node_sort_order" validate:"omitempty,min=0"`
	CurriculumNodeTargetGradeMin *int    `json:"curriculum_node_target_grade_min" validate:"omitempty,min=1,max=12"`
	CurriculumNodeTargetGradeMax *int    `json:"curriculum_node_target_grade_max" validate:"omitempty,min=1,max=12"`
	CurriculumNodeCapacity       *int    `json:"curriculum_node_capacity" validate:"omitempty,min=1"`
}

// Reparent is its own operation so the tree guards always run.
type ReparentCurriculumNodeRequest struct {
	CurriculumNodeParentID *uuid.UUID `json:"curriculum_node_parent_id"`
}

type ReorderCurriculumNodesRequest struct {
	// sibling ids in the desired order
	NodeIDs []uuid.UUID `json:"node_ids" validate:"required,min=1,dive,required"`
}

// ============================
// Converter
// ============================
func ToCurriculumNodeDTO(m model.CurriculumNodeModel) CurriculumNodeDTO {
	return CurriculumNodeDTO{
		CurriculumNodeID:             m.CurriculumNodeID.String(),
		CurriculumNodeAcademyID:      m.CurriculumNodeAcademyID.String(),
		CurriculumNodeParentID:       m.CurriculumNodeParentID,
		CurriculumNodeDepth:          m.CurriculumNodeDepth,
		CurriculumNodeSortOrder:      m.CurriculumNodeSortOrder,
		CurriculumNodeName:           m.CurriculumNodeName,
		CurriculumNodeCode:           m.CurriculumNodeCode,
		CurriculumNodeDescription:    m.CurriculumNodeDescription,
		CurriculumNodeTargetGradeMin: m.CurriculumNodeTargetGradeMin,
		CurriculumNodeTargetGradeMax: m.CurriculumNodeTargetGradeMax,
		CurriculumNodeCapacity:       m.CurriculumNodeCapacity,
		CurriculumNodeCreatedAt:      m.CurriculumNodeCreatedAt,
	}
}
