package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExamFileModel represents the `exam_files` table - PDF/audio artifacts
// an exam presents to the student. The display config (rotation, zoom,
// split view) is opaque here and interpreted client-side.
type ExamFileModel struct {
	ExamFileID        uuid.UUID `json:"exam_file_id" gorm:"column:exam_file_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ExamFileAcademyID uuid.UUID `json:"exam_file_academy_id" gorm:"column:exam_file_academy_id;type:uuid;not null;index"`
	ExamFileExamID    uuid.UUID `json:"exam_file_exam_id" gorm:"column:exam_file_exam_id;type:uuid;not null;index"`

	ExamFileName string `json:"exam_file_name" gorm:"column:exam_file_name;type:varchar(160);not null"`

	// pdf | audio
	ExamFileKind string `json:"exam_file_kind" gorm:"column:exam_file_kind;type:varchar(10);not null"`

	ExamFileURL       string `json:"exam_file_url" gorm:"column:exam_file_url;type:text;not null"`
	ExamFileSortOrder int    `json:"exam_file_sort_order" gorm:"column:exam_file_sort_order;not null;default:0"`

	// e.g. {"rotation": 90, "zoom": 1.25, "split_view": true}
	ExamFileDisplayConfig datatypes.JSON `json:"exam_file_display_config,omitempty" gorm:"column:exam_file_display_config;type:jsonb"`

	ExamFileCreatedAt time.Time  `json:"exam_file_created_at" gorm:"column:exam_file_created_at;not null;autoCreateTime"`
	ExamFileUpdatedAt *time.Time `json:"exam_file_updated_at,omitempty" gorm:"column:exam_file_updated_at"`
	ExamFileDeletedAt *time.Time `json:"exam_file_deleted_at,omitempty" gorm:"column:exam_file_deleted_at"`
}

func (ExamFileModel) TableName() string {
	return "exam_files"
}
