package dto

import (
	"time"

	"academylms_backend/internals/features/curriculum/settings/model"
)

// ============================
// Response DTO
// ============================
type CurriculumSettingsDTO struct {
	CurriculumSettingsID         *string   `json:"curriculum_settings_id,omitempty"`
	CurriculumSettingsAcademyID  string    `json:"curriculum_settings_academy_id"`
	CurriculumSettingsMaxDepth   int       `json:"curriculum_settings_max_depth"`
	CurriculumSettingsLevel1Name string    `json:"curriculum_settings_level1_name"`
	CurriculumSettingsLevel2Name string    `json:"curriculum_settings_level2_name"`
	CurriculumSettingsLevel3Name string    `json:"curriculum_settings_level3_name"`
	CurriculumSettingsLevel4Name string    `json:"curriculum_settings_level4_name"`
	CurriculumSettingsCreatedAt  time.Time `json:"curriculum_settings_created_at"`
}

// ============================
// Request DTO
// ============================
type UpsertCurriculumSettingsRequest struct {
	CurriculumSettingsMaxDepth   *int    `json:"curriculum_settings_max_depth" validate:"omitempty,min=1,max=4"`
	CurriculumSettingsLevel1Name *string `json:"curriculum_settings_level1_name" validate:"omitempty,min=1,max=60"`
	CurriculumSettingsLevel2Name *string `json:"curriculum_settings_level2_name" validate:"omitempty,min=1,max=60"`
	CurriculumSettingsLevel3Name *string `json:"curriculum_settings_level3_name" validate:"omitempty,min=1,max=60"`
	CurriculumSettingsLevel4Name *string `json:"curriculum_settings_level4_name" validate:"omitempty,min=1,max=60"`
}

// ============================
// Converter
// ============================
func ToCurriculumSettingsDTO(m model.CurriculumSettingsModel) CurriculumSettingsDTO {
	id := m.CurriculumSettingsID.String()
	return CurriculumSettingsDTO{
		CurriculumSettingsID:         &id,
		CurriculumSettingsAcademyID:  m.CurriculumSettingsAcademyID.String(),
		CurriculumSettingsMaxDepth:   m.CurriculumSettingsMaxDepth,
		CurriculumSettingsLevel1Name: m.CurriculumSettingsLevel1Name,
		CurriculumSettingsLevel2Name: m.CurriculumSettingsLevel2Name,
		CurriculumSettingsLevel3Name: m.CurriculumSettingsLevel3Name,
		CurriculumSettingsLevel4Name: m.CurriculumSettingsLevel4Name,
		CurriculumSettingsCreatedAt:  m.CurriculumSettingsCreatedAt,
	}
}
