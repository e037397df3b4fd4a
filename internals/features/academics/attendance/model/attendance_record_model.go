package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecordModel represents the `attendance_records` table.
// One live record per (session, student):
//
//	CREATE UNIQUE INDEX uq_attendance_records_session_student
//	ON attendance_records (attendance_record_session_id, attendance_record_student_id)
//	WHERE attendance_record_deleted_at IS NULL;
type AttendanceRecordModel struct {
	AttendanceRecordID        uuid.UUID `json:"attendance_record_id" gorm:"column:attendance_record_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceRecordAcademyID uuid.UUID `json:"attendance_record_academy_id" gorm:"column:attendance_record_academy_id;type:uuid;not null;index"`
	AttendanceRecordSessionID uuid.UUID `json:"attendance_record_session_id" gorm:"column:attendance_record_session_id;type:uuid;not null;index"` // FK -> attendance_sessions
	AttendanceRecordStudentID uuid.UUID `json:"attendance_record_student_id" gorm:"column:attendance_record_student_id;type:uuid;not null;index"` // FK -> students

	// present | absent | late | excused
	AttendanceRecordStatus string  `json:"attendance_record_status" gorm:"column:attendance_record_status;type:varchar(10);not null"`
	AttendanceRecordNote   *string `json:"attendance_record_note,omitempty" gorm:"column:attendance_record_note;type:text"`

	AttendanceRecordCreatedAt time.Time  `json:"attendance_record_created_at" gorm:"column:attendance_record_created_at;not null;autoCreateTime"`
	AttendanceRecordUpdatedAt *time.Time `json:"attendance_record_updated_at,omitempty" gorm:"column:attendance_record_updated_at"`
	AttendanceRecordDeletedAt *time.Time `json:"attendance_record_deleted_at,omitempty" gorm:"column:attendance_record_deleted_at"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
