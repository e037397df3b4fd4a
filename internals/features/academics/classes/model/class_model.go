package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel represents the `classes` table.
type ClassModel struct {
	ClassID        uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassAcademyID uuid.UUID `json:"class_academy_id" gorm:"column:class_academy_id;type:uuid;not null;index"` // FK -> academies(academy_id)

	ClassName string `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`
	ClassSlug string `json:"class_slug" gorm:"column:class_slug;type:varchar(160);not null"`
	// short class code used in generated exam titles, e.g. "A1-MON"
	ClassCode *string `json:"class_code,omitempty" gorm:"column:class_code;type:varchar(40)"`

	// optional placement into the curriculum tree
	ClassCurriculumNodeID *uuid.UUID `json:"class_curriculum_node_id,omitempty" gorm:"column:class_curriculum_node_id;type:uuid"` // FK -> curriculum_nodes(curriculum_node_id)

	ClassCapacity     *int    `json:"class_capacity,omitempty" gorm:"column:class_capacity"`
	ClassScheduleNote *string `json:"class_schedule_note,omitempty" gorm:"column:class_schedule_note;type:text"`

	ClassIsActive bool `json:"class_is_active" gorm:"column:class_is_active;not null;default:true"`

	ClassCreatedAt time.Time  `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt *time.Time `json:"class_updated_at,omitempty" gorm:"column:class_updated_at"`
	ClassDeletedAt *time.Time `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
