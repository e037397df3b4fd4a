package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"academylms_backend/internals/features/exams/attempts/model"
	examModel "academylms_backend/internals/features/exams/exams/model"
)

func f64(v float64) *float64 { return &v }

func TestComputeScoreDefaultThreshold(t *testing.T) {
	// 65/100 with no passing score configured -> 65%, passed at the
	// 60% default
	sum := ComputeScore([]*float64{f64(40), f64(25)}, 100, nil)

	if sum.RawScore != 65 {
		t.Fatalf("raw = %v, want 65", sum.RawScore)
	}
	if sum.Percentage == nil || *sum.Percentage != 65 {
		t.Fatalf("percentage = %v, want 65", sum.Percentage)
	}
	if sum.Passed == nil || !*sum.Passed {
		t.Fatalf("passed = %v, want true", sum.Passed)
	}
}

func TestComputeScoreCustomThreshold(t *testing.T) {
	sum := ComputeScore([]*float64{f64(65)}, 100, f64(70))

	if sum.Passed == nil || *sum.Passed {
		t.Fatalf("65%% against a 70%% threshold must fail")
	}
}

func TestComputeScoreUngraded(t *testing.T) {
	// ungraded answers count as answered, contribute nothing
	sum := ComputeScore([]*float64{f64(10), nil, nil}, 40, nil)

	if sum.AnsweredCount != 3 {
		t.Fatalf("answered = %d, want 3", sum.AnsweredCount)
	}
	if sum.RawScore != 10 {
		t.Fatalf("raw = %v, want 10", sum.RawScore)
	}
}

func TestComputeScoreZeroMax(t *testing.T) {
	sum := ComputeScore([]*float64{f64(5)}, 0, nil)

	if sum.Percentage != nil || sum.Passed != nil {
		t.Fatalf("zero max score must leave percentage/passed unset")
	}
}

func openScoringTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	for _, stmt := range []string{
		`CREATE TABLE exams (
			exam_id TEXT PRIMARY KEY,
			exam_academy_id TEXT NOT NULL,
			exam_title TEXT NOT NULL,
			exam_description TEXT,
			exam_type TEXT NOT NULL DEFAULT 'quiz',
			exam_total_points REAL NOT NULL DEFAULT 0,
			exam_passing_score REAL,
			exam_duration_minutes INTEGER,
			exam_attempt_limit INTEGER,
			exam_shuffle_questions INTEGER NOT NULL DEFAULT 0,
			exam_tags TEXT,
			exam_status TEXT NOT NULL DEFAULT 'draft',
			exam_created_at DATETIME,
			exam_updated_at DATETIME,
			exam_deleted_at DATETIME
		)`,
		`CREATE TABLE student_exam_attempts (
			student_exam_attempt_id TEXT PRIMARY KEY,
			student_exam_attempt_academy_id TEXT NOT NULL,
			student_exam_attempt_student_id TEXT NOT NULL,
			student_exam_attempt_exam_id TEXT NOT NULL,
			student_exam_attempt_assignment_id TEXT,
			student_exam_attempt_session_id TEXT,
			student_exam_attempt_number INTEGER NOT NULL DEFAULT 1,
			student_exam_attempt_status TEXT NOT NULL DEFAULT 'in_progress',
			student_exam_attempt_started_at DATETIME,
			student_exam_attempt_submitted_at DATETIME,
			student_exam_attempt_raw_score REAL NOT NULL DEFAULT 0,
			student_exam_attempt_max_score REAL NOT NULL DEFAULT 0,
			student_exam_attempt_answered_count INTEGER NOT NULL DEFAULT 0,
			student_exam_attempt_percentage REAL,
			student_exam_attempt_passed INTEGER,
			student_exam_attempt_created_at DATETIME,
			student_exam_attempt_updated_at DATETIME,
			student_exam_attempt_deleted_at DATETIME
		)`,
		`CREATE TABLE student_answers (
			student_answer_id TEXT PRIMARY KEY,
			student_answer_academy_id TEXT NOT NULL,
			student_answer_attempt_id TEXT NOT NULL,
			student_answer_question_id TEXT NOT NULL,
			student_answer_payload TEXT,
			student_answer_points_earned REAL,
			student_answer_is_correct INTEGER,
			student_answer_created_at DATETIME,
			student_answer_updated_at DATETIME,
			student_answer_deleted_at DATETIME
		)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func TestRescoreAttemptSumsLiveAnswers(t *testing.T) {
	db := openScoringTestDB(t)
	academyID := uuid.New()

	exam := examModel.ExamModel{
		ExamID:          uuid.New(),
		ExamAcademyID:   academyID,
		ExamTitle:       "Placement",
		ExamTotalPoints: 100,
		// passing score left NULL -> 60% default
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}

	attempt := model.StudentExamAttemptModel{
		StudentExamAttemptID:        uuid.New(),
		StudentExamAttemptAcademyID: academyID,
		StudentExamAttemptStudentID: uuid.New(),
		StudentExamAttemptExamID:    exam.ExamID,
		StudentExamAttemptStatus:    model.AttemptStatusInProgress,
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	for _, pts := range []float64{40, 25} {
		ans := model.StudentAnswerModel{
			StudentAnswerID:           uuid.New(),
			StudentAnswerAcademyID:    academyID,
			StudentAnswerAttemptID:    attempt.StudentExamAttemptID,
			StudentAnswerQuestionID:   uuid.New(),
			StudentAnswerPointsEarned: f64(pts),
		}
		if err := db.Create(&ans).Error; err != nil {
			t.Fatalf("create answer: %v", err)
		}
	}
	// a soft-deleted answer must not count
	deleted := model.StudentAnswerModel{
		StudentAnswerID:           uuid.New(),
		StudentAnswerAcademyID:    academyID,
		StudentAnswerAttemptID:    attempt.StudentExamAttemptID,
		StudentAnswerQuestionID:   uuid.New(),
		StudentAnswerPointsEarned: f64(30),
	}
	if err := db.Create(&deleted).Error; err != nil {
		t.Fatalf("create deleted answer: %v", err)
	}
	if err := db.Model(&deleted).Update("student_answer_deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error; err != nil {
		t.Fatalf("soft delete answer: %v", err)
	}

	sum, err := RescoreAttempt(db, academyID, &attempt)
	if err != nil {
		t.Fatalf("rescore: %v", err)
	}
	if sum.RawScore != 65 {
		t.Fatalf("raw = %v, want 65", sum.RawScore)
	}
	if sum.Percentage == nil || *sum.Percentage != 65 {
		t.Fatalf("percentage = %v, want 65", sum.Percentage)
	}
	if sum.Passed == nil || !*sum.Passed {
		t.Fatalf("passed = %v, want true at the 60%% default", sum.Passed)
	}

	// idempotent: a second run writes identical values
	again, err := RescoreAttempt(db, academyID, &attempt)
	if err != nil {
		t.Fatalf("rescore again: %v", err)
	}
	if again.RawScore != sum.RawScore || *again.Percentage != *sum.Percentage || *again.Passed != *sum.Passed {
		t.Fatalf("rescore not idempotent: %+v vs %+v", again, sum)
	}

	var stored model.StudentExamAttemptModel
	if err := db.First(&stored, "student_exam_attempt_id = ?", attempt.StudentExamAttemptID).Error; err != nil {
		t.Fatalf("reload attempt: %v", err)
	}
	if stored.StudentExamAttemptRawScore != 65 || stored.StudentExamAttemptAnsweredCount != 2 {
		t.Fatalf("stored raw/answered = %v/%d, want 65/2",
			stored.StudentExamAttemptRawScore, stored.StudentExamAttemptAnsweredCount)
	}
}

func TestRescoreAttemptMissingExamUsesSnapshot(t *testing.T) {
	db := openScoringTestDB(t)
	academyID := uuid.New()

	attempt := model.StudentExamAttemptModel{
		StudentExamAttemptID:        uuid.New(),
		StudentExamAttemptAcademyID: academyID,
		StudentExamAttemptStudentID: uuid.New(),
		StudentExamAttemptExamID:    uuid.New(), // no exam row
		StudentExamAttemptStatus:    model.AttemptStatusInProgress,
		StudentExamAttemptMaxScore:  50,
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	ans := model.StudentAnswerModel{
		StudentAnswerID:           uuid.New(),
		StudentAnswerAcademyID:    academyID,
		StudentAnswerAttemptID:    attempt.StudentExamAttemptID,
		StudentAnswerQuestionID:   uuid.New(),
		StudentAnswerPointsEarned: f64(40),
	}
	if err := db.Create(&ans).Error; err != nil {
		t.Fatalf("create answer: %v", err)
	}

	sum, err := RescoreAttempt(db, academyID, &attempt)
	if err != nil {
		t.Fatalf("missing exam config must not error: %v", err)
	}
	if sum.MaxScore != 50 {
		t.Fatalf("max = %v, want snapshot 50", sum.MaxScore)
	}
	if sum.Percentage == nil || *sum.Percentage != 80 {
		t.Fatalf("percentage = %v, want 80", sum.Percentage)
	}
}

func TestRescoreAttemptSoftDeletedExamUsesSnapshot(t *testing.T) {
	db := openScoringTestDB(t)
	academyID := uuid.New()

	// the exam row survives soft-deleted with a stricter passing score;
	// scoring must ignore it and fall back to the attempt snapshot
	exam := examModel.ExamModel{
		ExamID:           uuid.New(),
		ExamAcademyID:    academyID,
		ExamTitle:        "Retired placement",
		ExamTotalPoints:  200,
		ExamPassingScore: f64(90),
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}
	if err := db.Model(&exam).Update("exam_deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error; err != nil {
		t.Fatalf("soft delete exam: %v", err)
	}

	attempt := model.StudentExamAttemptModel{
		StudentExamAttemptID:        uuid.New(),
		StudentExamAttemptAcademyID: academyID,
		StudentExamAttemptStudentID: uuid.New(),
		StudentExamAttemptExamID:    exam.ExamID,
		StudentExamAttemptStatus:    model.AttemptStatusInProgress,
		StudentExamAttemptMaxScore:  50,
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	ans := model.StudentAnswerModel{
		StudentAnswerID:           uuid.New(),
		StudentAnswerAcademyID:    academyID,
		StudentAnswerAttemptID:    attempt.StudentExamAttemptID,
		StudentAnswerQuestionID:   uuid.New(),
		StudentAnswerPointsEarned: f64(40),
	}
	if err := db.Create(&ans).Error; err != nil {
		t.Fatalf("create answer: %v", err)
	}

	sum, err := RescoreAttempt(db, academyID, &attempt)
	if err != nil {
		t.Fatalf("rescore: %v", err)
	}
	if sum.MaxScore != 50 {
		t.Fatalf("max = %v, want snapshot 50 over the deleted exam's 200", sum.MaxScore)
	}
	if sum.Percentage == nil || *sum.Percentage != 80 {
		t.Fatalf("percentage = %v, want 80", sum.Percentage)
	}
	if sum.Passed == nil || !*sum.Passed {
		t.Fatalf("passed = %v, want true at the 60%% default, not the deleted exam's 90%%", sum.Passed)
	}
}
