package model

import (
	"time"

	"github.com/google/uuid"
)

// CurriculumNodeModel represents the `curriculum_nodes` table - one
// level of the configurable-depth program hierarchy
// (Program -> SubProgram -> Level -> Unit).
type CurriculumNodeModel struct {
	CurriculumNodeID        uuid.UUID `json:"curriculum_node_id" gorm:"column:curriculum_node_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CurriculumNodeAcademyID uuid.UUID `json:"curriculum_node_academy_id" gorm:"column:curriculum_node_academy_id;type:uuid;not null;index"`

	// NULL = root node
	CurriculumNodeParentID *uuid.UUID `json:"curriculum_node_parent_id,omitempty" gorm:"column:curriculum_node_parent_id;type:uuid;index"`

	// 1-based; always derived from the parent, never taken from input
	CurriculumNodeDepth     int `json:"curriculum_node_depth" gorm:"column:curriculum_node_depth;not null"`
	CurriculumNodeSortOrder int `json:"curriculum_node_sort_order" gorm:"column:curriculum_node_sort_order;not null;default:0"`

	CurriculumNodeName        string  `json:"curriculum_node_name" gorm:"column:curriculum_node_name;type:varchar(120);not null"`
	CurriculumNodeCode        *string `json:"curriculum_node_code,omitempty" gorm:"column:curriculum_node_code;type:varchar(40)"`
	CurriculumNodeDescription *string `json:"curriculum_node_description,omitempty" gorm:"column:curriculum_node_description;type:text"`

	CurriculumNodeTargetGradeMin *int `json:"curriculum_node_target_grade_min,omitempty" gorm:"column:curriculum_node_target_grade_min"`
	CurriculumNodeTargetGradeMax *int `json:"curriculum_node_target_grade_max,omitempty" gorm:"column:curriculum_node_target_grade_max"`
	CurriculumNodeCapacity       *int `json:"curriculum_node_capacity,omitempty" gorm:"column:curriculum_node_capacity"`

	CurriculumNodeCreatedAt time.Time  `json:"curriculum_node_created_at" gorm:"column:curriculum_node_created_at;not null;autoCreateTime"`
	CurriculumNodeUpdatedAt *time.Time `json:"curriculum_node_updated_at,omitempty" gorm:"column:curriculum_node_updated_at"`
	CurriculumNodeDeletedAt *time.Time `json:"curriculum_node_deleted_at,omitempty" gorm:"column:curriculum_node_deleted_at"`
}

func (CurriculumNodeModel) TableName() string {
	return "curriculum_nodes"
}
