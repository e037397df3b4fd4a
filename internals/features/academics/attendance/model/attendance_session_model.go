package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSessionModel represents the `attendance_sessions` table -
// one row per class meeting.
type AttendanceSessionModel struct {
	AttendanceSessionID        uuid.UUID `json:"attendance_session_id" gorm:"column:attendance_session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceSessionAcademyID uuid.UUID `json:"attendance_session_academy_id" gorm:"column:attendance_session_academy_id;type:uuid;not null;index"`
	AttendanceSessionClassID   uuid.UUID `json:"attendance_session_class_id" gorm:"column:attendance_session_class_id;type:uuid;not null;index"` // FK -> classes(class_id)

	AttendanceSessionTeacherID *uuid.UUID `json:"attendance_session_teacher_id,omitempty" gorm:"column:attendance_session_teacher_id;type:uuid"` // FK -> teachers(teacher_id)

	AttendanceSessionDate  time.Time `json:"attendance_session_date" gorm:"column:attendance_session_date;type:date;not null"`
	AttendanceSessionTopic *string   `json:"attendance_session_topic,omitempty" gorm:"column:attendance_session_topic;type:varchar(200)"`
	AttendanceSessionNote  *string   `json:"attendance_session_note,omitempty" gorm:"column:attendance_session_note;type:text"`

	AttendanceSessionCreatedAt time.Time  `json:"attendance_session_created_at" gorm:"column:attendance_session_created_at;not null;autoCreateTime"`
	AttendanceSessionUpdatedAt *time.Time `json:"attendance_session_updated_at,omitempty" gorm:"column:attendance_session_updated_at"`
	AttendanceSessionDeletedAt *time.Time `json:"attendance_session_deleted_at,omitempty" gorm:"column:attendance_session_deleted_at"`
}

func (AttendanceSessionModel) TableName() string {
	return "attendance_sessions"
}
