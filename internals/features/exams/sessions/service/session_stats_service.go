package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "academylms_backend/internals/features/exams/attempts/model"
	"academylms_backend/internals/features/exams/sessions/model"
)

// RecomputeSessionStats refreshes a session's aggregates from its live
// attempts: students started, students submitted, and the average
// percentage over submitted attempts. Runs inside the caller's
// transaction and is a no-op for attempts without a session.
func RecomputeSessionStats(tx *gorm.DB, academyID uuid.UUID, sessionID *uuid.UUID) error {
	if sessionID == nil {
		return nil
	}

	base := tx.Model(&attemptModel.StudentExamAttemptModel{}).
		Where("student_exam_attempt_academy_id = ? AND student_exam_attempt_session_id = ? AND student_exam_attempt_deleted_at IS NULL",
			academyID, *sessionID)

	var started int64
	if err := base.Session(&gorm.Session{}).
		Distinct("student_exam_attempt_student_id").
		Count(&started).Error; err != nil {
		return err
	}

	var submitted int64
	if err := base.Session(&gorm.Session{}).
		Where("student_exam_attempt_status IN ?", []string{attemptModel.AttemptStatusSubmitted, attemptModel.AttemptStatusAutoSubmitted}).
		Distinct("student_exam_attempt_student_id").
		Count(&submitted).Error; err != nil {
		return err
	}

	var avg *float64
	if err := base.Session(&gorm.Session{}).
		Where("student_exam_attempt_status IN ?", []string{attemptModel.AttemptStatusSubmitted, attemptModel.AttemptStatusAutoSubmitted}).
		Select("AVG(student_exam_attempt_percentage)").
		Scan(&avg).Error; err != nil {
		return err
	}

	now := time.Now()
	return tx.Model(&model.ExamSessionModel{}).
		Where("exam_session_id = ?", *sessionID).
		Updates(map[string]any{
			"exam_session_students_started":   started,
			"exam_session_students_submitted": submitted,
			"exam_session_average_score":      avg,
			"exam_session_updated_at":         &now,
		}).Error
}
