package dto

import (
	"time"

	"github.com/google/uuid"

	"academylms_backend/internals/features/academics/students/model"
)

type StudentDTO struct {
	StudentID               string     `json:"student_id"`
	StudentAcademyID        string     `json:"student_academy_id"`
	StudentUserID           *uuid.UUID `json:"student_user_id,omitempty"`
	StudentName             string     `json:"student_name"`
	StudentCode             *string    `json:"student_code,omitempty"`
	StudentGrade            *int       `json:"student_grade,omitempty"`
	StudentGuardianName     *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone    *string    `json:"student_guardian_phone,omitempty"`
	StudentEnrollmentStatus string     `json:"student_enrollment_status"`
	StudentCreatedAt        time.Time  `json:"student_created_at"`
}

type CreateStudentRequest struct {
	StudentUserID        *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentName          string     `json:"student_name" validate:"required,min=2,max=120"`
	StudentCode          *string    `json:"student_code" validate:"omitempty,max=40"`
	StudentGrade         *int       `json:"student_grade" validate:"omitempty,min=1,max=12"`
	StudentGuardianName  *string    `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

type UpdateStudentRequest struct {
	StudentName             *string `json:"student_name" validate:"omitempty,min=2,max=120"`
	StudentCode             *string `json:"student_code" validate:"omitempty,max=40"`
	StudentGrade            *int    `json:"student_grade" validate:"omitempty,min=1,max=12"`
	StudentGuardianName     *string `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone    *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentEnrollmentStatus *string `json:"student_enrollment_status" validate:"omitempty,oneof=active paused left"`
}

func ToStudentDTO(m model.StudentModel) StudentDTO {
	return StudentDTO{
		StudentID:               m.StudentID.String(),
		StudentAcademyID:        m.StudentAcademyID.String(),
		StudentUserID:           m.StudentUserID,
		StudentName:             m.StudentName,
		StudentCode:             m.StudentCode,
		StudentGrade:            m.StudentGrade,
		StudentGuardianName:     m.StudentGuardianName,
		StudentGuardianPhone:    m.StudentGuardianPhone,
		StudentEnrollmentStatus: m.StudentEnrollmentStatus,
		StudentCreatedAt:        m.StudentCreatedAt,
	}
}
