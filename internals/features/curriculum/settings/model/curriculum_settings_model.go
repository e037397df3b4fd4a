package model

import (
	"time"

	"github.com/google/uuid"
)

// CurriculumSettingsModel represents the `curriculum_settings` table -
// exactly one live row per academy.
type CurriculumSettingsModel struct {
	CurriculumSettingsID        uuid.UUID `json:"curriculum_settings_id" gorm:"column:curriculum_settings_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CurriculumSettingsAcademyID uuid.UUID `json:"curriculum_settings_academy_id" gorm:"column:curriculum_settings_academy_id;type:uuid;not null;index"`

	// 1..4 levels of hierarchy the academy wants to use
	CurriculumSettingsMaxDepth int `json:"curriculum_settings_max_depth" gorm:"column:curriculum_settings_max_depth;not null;default:4"`

	CurriculumSettingsLevel1Name string `json:"curriculum_settings_level1_name" gorm:"column:curriculum_settings_level1_name;type:varchar(60);not null;default:'Program'"`
	CurriculumSettingsLevel2Name string `json:"curriculum_settings_level2_name" gorm:"column:curriculum_settings_level2_name;type:varchar(60);not null;default:'SubProgram'"`
	CurriculumSettingsLevel3Name string `json:"curriculum_settings_level3_name" gorm:"column:curriculum_settings_level3_name;type:varchar(60);not null;default:'Level'"`
	CurriculumSettingsLevel4Name string `json:"curriculum_settings_level4_name" gorm:"column:curriculum_settings_level4_name;type:varchar(60);not null;default:'Unit'"`

	CurriculumSettingsCreatedAt time.Time  `json:"curriculum_settings_created_at" gorm:"column:curriculum_settings_created_at;not null;autoCreateTime"`
	CurriculumSettingsUpdatedAt *time.Time `json:"curriculum_settings_updated_at,omitempty" gorm:"column:curriculum_settings_updated_at"`
	CurriculumSettingsDeletedAt *time.Time `json:"curriculum_settings_deleted_at,omitempty" gorm:"column:curriculum_settings_deleted_at"`
}

func (CurriculumSettingsModel) TableName() string {
	return "curriculum_settings"
}
