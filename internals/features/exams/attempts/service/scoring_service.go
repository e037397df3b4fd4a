package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"academylms_backend/internals/features/exams/attempts/model"
	examModel "academylms_backend/internals/features/exams/exams/model"
)

// DefaultPassingPercent applies when an exam has no passing score
// configured. Missing exam config is never an error at scoring time.
const DefaultPassingPercent = 60.0

// ScoreSummary is the result of scoring one attempt.
type ScoreSummary struct {
	RawScore      float64  `json:"raw_score"`
	MaxScore      float64  `json:"max_score"`
	AnsweredCount int      `json:"answered_count"`
	Percentage    *float64 `json:"percentage,omitempty"`
	Passed        *bool    `json:"passed,omitempty"`
}

// ComputeScore folds graded answer points into a summary. Ungraded
// answers (nil points) count as answered but contribute nothing.
// passingPercent nil falls back to DefaultPassingPercent. A zero max
// score leaves percentage and passed unset.
func ComputeScore(pointsEarned []*float64, maxScore float64, passingPercent *float64) ScoreSummary {
	sum := ScoreSummary{MaxScore: maxScore, AnsweredCount: len(pointsEarned)}
	for _, p := range pointsEarned {
		if p != nil {
			sum.RawScore += *p
		}
	}
	if maxScore <= 0 {
		return sum
	}

	pct := sum.RawScore / maxScore * 100
	sum.Percentage = &pct

	threshold := DefaultPassingPercent
	if passingPercent != nil {
		threshold = *passingPercent
	}
	passed := pct >= threshold
	sum.Passed = &passed
	return sum
}

// RescoreAttempt recomputes an attempt's score from its live answers
// and persists the result. Idempotent: rerunning against unchanged
// answers writes the same values. Runs inside the caller's transaction.
func RescoreAttempt(tx *gorm.DB, academyID uuid.UUID, attempt *model.StudentExamAttemptModel) (ScoreSummary, error) {
	var answers []model.StudentAnswerModel
	if err := tx.
		Select("student_answer_points_earned").
		Where("student_answer_academy_id = ? AND student_answer_attempt_id = ? AND student_answer_deleted_at IS NULL",
			academyID, attempt.StudentExamAttemptID).
		Find(&answers).Error; err != nil {
		return ScoreSummary{}, err
	}
	points := make([]*float64, 0, len(answers))
	for _, a := range answers {
		points = append(points, a.StudentAnswerPointsEarned)
	}

	maxScore := attempt.StudentExamAttemptMaxScore
	var passingPercent *float64
	var exam examModel.ExamModel
	err := tx.
		Select("exam_total_points", "exam_passing_score").
		Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
		First(&exam, "exam_id = ?", attempt.StudentExamAttemptExamID).Error
	if err == nil {
		maxScore = exam.ExamTotalPoints
		passingPercent = exam.ExamPassingScore
	}
	// exam gone or soft-deleted: score against the snapshot taken at
	// attempt start

	sum := ComputeScore(points, maxScore, passingPercent)

	now := time.Now()
	if err := tx.Model(&model.StudentExamAttemptModel{}).
		Where("student_exam_attempt_id = ?", attempt.StudentExamAttemptID).
		Updates(map[string]any{
			"student_exam_attempt_raw_score":      sum.RawScore,
			"student_exam_attempt_max_score":      sum.MaxScore,
			"student_exam_attempt_answered_count": sum.AnsweredCount,
			"student_exam_attempt_percentage":     sum.Percentage,
			"student_exam_attempt_passed":         sum.Passed,
			"student_exam_attempt_updated_at":     &now,
		}).Error; err != nil {
		return ScoreSummary{}, err
	}

	attempt.StudentExamAttemptRawScore = sum.RawScore
	attempt.StudentExamAttemptMaxScore = sum.MaxScore
	attempt.StudentExamAttemptAnsweredCount = sum.AnsweredCount
	attempt.StudentExamAttemptPercentage = sum.Percentage
	attempt.StudentExamAttemptPassed = sum.Passed
	return sum, nil
}
