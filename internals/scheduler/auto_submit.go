package scheduler

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	assignmentModel "academylms_backend/internals/features/exams/assignments/model"
	attemptModel "academylms_backend/internals/features/exams/attempts/model"
	attemptService "academylms_backend/internals/features/exams/attempts/service"
	examModel "academylms_backend/internals/features/exams/exams/model"
	sessionService "academylms_backend/internals/features/exams/sessions/service"
)

// StartAttemptAutoSubmitScheduler runs the reaper every minute: any
// attempt still in_progress past its time limit is moved to
// auto_submitted and scored.
func StartAttemptAutoSubmitScheduler(db *gorm.DB) {
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", func() {
		if err := reapExpiredAttempts(db); err != nil {
			log.Printf("[ERROR] attempt auto-submit pass failed: %v", err)
		}
	}); err != nil {
		log.Printf("[ERROR] failed to register auto-submit job: %v", err)
		return
	}
	c.Start()
	log.Println("✅ Attempt auto-submit scheduler started (every minute)")
}

type timeLimitOverride struct {
	TimeLimitMinutes *int `json:"time_limit_minutes"`
}

func reapExpiredAttempts(db *gorm.DB) error {
	var attempts []attemptModel.StudentExamAttemptModel
	if err := db.
		Where("student_exam_attempt_status = ? AND student_exam_attempt_deleted_at IS NULL", attemptModel.AttemptStatusInProgress).
		Find(&attempts).Error; err != nil {
		return err
	}

	now := time.Now()
	for i := range attempts {
		attempt := &attempts[i]

		limit, err := resolveTimeLimit(db, attempt)
		if err != nil {
			log.Printf("[WARN] skipping attempt %s: %v", attempt.StudentExamAttemptID, err)
			continue
		}
		if limit == nil {
			continue // untimed
		}
		deadline := attempt.StudentExamAttemptStartedAt.Add(time.Duration(*limit) * time.Minute)
		if now.Before(deadline) {
			continue
		}

		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(attempt).Updates(map[string]any{
				"student_exam_attempt_status":       attemptModel.AttemptStatusAutoSubmitted,
				"student_exam_attempt_submitted_at": &now,
				"student_exam_attempt_updated_at":   &now,
			}).Error; err != nil {
				return err
			}
			attempt.StudentExamAttemptStatus = attemptModel.AttemptStatusAutoSubmitted
			if _, err := attemptService.RescoreAttempt(tx, attempt.StudentExamAttemptAcademyID, attempt); err != nil {
				return err
			}
			return sessionService.RecomputeSessionStats(tx, attempt.StudentExamAttemptAcademyID, attempt.StudentExamAttemptSessionID)
		})
		if txErr != nil {
			log.Printf("[ERROR] auto-submit of attempt %s failed: %v", attempt.StudentExamAttemptID, txErr)
			continue
		}
		log.Printf("[INFO] auto-submitted attempt %s (deadline %s)", attempt.StudentExamAttemptID, deadline.Format(time.RFC3339))
	}
	return nil
}

// resolveTimeLimit prefers the assignment config override, then the
// exam's duration. nil means no limit.
func resolveTimeLimit(db *gorm.DB, attempt *attemptModel.StudentExamAttemptModel) (*int, error) {
	if attempt.StudentExamAttemptAssignmentID != nil {
		var assignment assignmentModel.ClassExamAssignmentModel
		err := db.
			Select("class_exam_assignment_config").
			Where("class_exam_assignment_deleted_at IS NULL").
			First(&assignment, "class_exam_assignment_id = ?", *attempt.StudentExamAttemptAssignmentID).Error
		if err == nil && len(assignment.ClassExamAssignmentConfig) > 0 {
			var ov timeLimitOverride
			if err := sonic.Unmarshal(assignment.ClassExamAssignmentConfig, &ov); err == nil && ov.TimeLimitMinutes != nil {
				return ov.TimeLimitMinutes, nil
			}
		}
	}

	var exam examModel.ExamModel
	if err := db.
		Select("exam_duration_minutes").
		First(&exam, "exam_id = ?", attempt.StudentExamAttemptExamID).Error; err != nil {
		return nil, err
	}
	return exam.ExamDurationMinutes, nil
}
