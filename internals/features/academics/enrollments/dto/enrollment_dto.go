package dto

import (
	"time"

	"github.com/google/uuid"

	"academylms_backend/internals/features/academics/enrollments/model"
)

type EnrollmentDTO struct {
	EnrollmentID        string     `json:"enrollment_id"`
	EnrollmentStudentID string     `json:"enrollment_student_id"`
	EnrollmentClassID   string     `json:"enrollment_class_id"`
	EnrollmentStatus    string     `json:"enrollment_status"`
	EnrollmentJoinedAt  time.Time  `json:"enrollment_joined_at"`
	EnrollmentLeftAt    *time.Time `json:"enrollment_left_at,omitempty"`
}

type CreateEnrollmentRequest struct {
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentClassID   uuid.UUID `json:"enrollment_class_id" validate:"required"`
}

type UpdateEnrollmentRequest struct {
	EnrollmentStatus *string `json:"enrollment_status" validate:"omitempty,oneof=active completed withdrawn"`
}

func ToEnrollmentDTO(m model.EnrollmentModel) EnrollmentDTO {
	return EnrollmentDTO{
		EnrollmentID:        m.EnrollmentID.String(),
		EnrollmentStudentID: m.EnrollmentStudentID.String(),
		EnrollmentClassID:   m.EnrollmentClassID.String(),
		EnrollmentStatus:    m.EnrollmentStatus,
		EnrollmentJoinedAt:  m.EnrollmentJoinedAt,
		EnrollmentLeftAt:    m.EnrollmentLeftAt,
	}
}
