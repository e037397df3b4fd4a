package dto

import (
	"time"

	"github.com/google/uuid"

	"academylms_backend/internals/features/academics/attendance/model"
)

// ============================
// Session DTOs
// ============================
type AttendanceSessionDTO struct {
	AttendanceSessionID        string     `json:"attendance_session_id"`
	AttendanceSessionClassID   string     `json:"attendance_session_class_id"`
	AttendanceSessionTeacherID *uuid.UUID `json:"attendance_session_teacher_id,omitempty"`
	AttendanceSessionDate      time.Time  `json:"attendance_session_date"`
	AttendanceSessionTopic     *string    `json:"attendance_session_topic,omitempty"`
	AttendanceSessionNote      *string    `json:"attendance_session_note,omitempty"`
	AttendanceSessionCreatedAt time.Time  `json:"attendance_session_created_at"`
}

type CreateAttendanceSessionRequest struct {
	AttendanceSessionClassID   uuid.UUID  `json:"attendance_session_class_id" validate:"required"`
	AttendanceSessionTeacherID *uuid.UUID `json:"attendance_session_teacher_id" validate:"omitempty"`
	AttendanceSessionDate      time.Time  `json:"attendance_session_date" validate:"required"`
	AttendanceSessionTopic     *string    `json:"attendance_session_topic" validate:"omitempty,max=200"`
	AttendanceSessionNote      *string    `json:"attendance_session_note"`
}

// ============================
// Record DTOs
// ============================
type AttendanceRecordDTO struct {
	AttendanceRecordID        string  `json:"attendance_record_id"`
	AttendanceRecordSessionID string  `json:"attendance_record_session_id"`
	AttendanceRecordStudentID string  `json:"attendance_record_student_id"`
	AttendanceRecordStatus    string  `json:"attendance_record_status"`
	AttendanceRecordNote      *string `json:"attendance_record_note,omitempty"`
}

type UpsertAttendanceRecordRequest struct {
	AttendanceRecordStudentID uuid.UUID `json:"attendance_record_student_id" validate:"required"`
	AttendanceRecordStatus    string    `json:"attendance_record_status" validate:"required,oneof=present absent late excused"`
	AttendanceRecordNote      *string   `json:"attendance_record_note"`
}

// ============================
// Converters
// ============================
func ToAttendanceSessionDTO(m model.AttendanceSessionModel) AttendanceSessionDTO {
	return AttendanceSessionDTO{
		AttendanceSessionID:        m.AttendanceSessionID.String(),
		AttendanceSessionClassID:   m.AttendanceSessionClassID.String(),
		AttendanceSessionTeacherID: m.AttendanceSessionTeacherID,
		AttendanceSessionDate:      m.AttendanceSessionDate,
		AttendanceSessionTopic:     m.AttendanceSessionTopic,
		AttendanceSessionNote:      m.AttendanceSessionNote,
		AttendanceSessionCreatedAt: m.AttendanceSessionCreatedAt,
	}
}

func ToAttendanceRecordDTO(m model.AttendanceRecordModel) AttendanceRecordDTO {
	return AttendanceRecordDTO{
		AttendanceRecordID:        m.AttendanceRecordID.String(),
		AttendanceRecordSessionID: m.AttendanceRecordSessionID.String(),
		AttendanceRecordStudentID: m.AttendanceRecordStudentID.String(),
		AttendanceRecordStatus:    m.AttendanceRecordStatus,
		AttendanceRecordNote:      m.AttendanceRecordNote,
	}
}
