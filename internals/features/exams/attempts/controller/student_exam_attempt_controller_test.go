package controller

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"academylms_backend/internals/features/exams/attempts/model"
	examModel "academylms_backend/internals/features/exams/exams/model"
)

func openTestDB(t *testing.T) *gorm.DB {
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
			student_exam_attempt_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
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
			student_answer_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
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

func newTestApp(db *gorm.DB, academyID, studentID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("academy_admin_ids", []string{academyID.String()})
		c.Locals("student_id", studentID.String())
		return c.Next()
	})
	ctrl := NewStudentExamAttemptController(db)
	app.Post("/attempts", ctrl.StartAttempt)
	app.Post("/attempts/:id/submit", ctrl.SubmitAttempt)
	app.Post("/attempts/:id/abandon", ctrl.AbandonAttempt)
	return app
}

func seedExam(t *testing.T, db *gorm.DB, academyID uuid.UUID, attemptLimit *int) examModel.ExamModel {
	t.Helper()
	exam := examModel.ExamModel{
		ExamID:           uuid.New(),
		ExamAcademyID:    academyID,
		ExamTitle:        "Placement",
		ExamTotalPoints:  100,
		ExamAttemptLimit: attemptLimit,
		ExamStatus:       "published",
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}
	return exam
}

func startAttempt(t *testing.T, app *fiber.App, examID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	body := fmt.Sprintf(`{"student_exam_attempt_exam_id": %q}`, examID)
	req := httptest.NewRequest("POST", "/attempts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	return rec
}

func TestStartAttemptRejectsParallelAttempt(t *testing.T) {
	db := openTestDB(t)
	academyID, studentID := uuid.New(), uuid.New()
	exam := seedExam(t, db, academyID, nil)
	app := newTestApp(db, academyID, studentID)

	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusCreated {
		t.Fatalf("first attempt: status %d, want 201", rec.Code)
	}
	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusConflict {
		t.Fatalf("parallel attempt: status %d, want 409", rec.Code)
	}
}

func TestStartAttemptNumbersSequentially(t *testing.T) {
	db := openTestDB(t)
	academyID, studentID := uuid.New(), uuid.New()
	exam := seedExam(t, db, academyID, nil)
	app := newTestApp(db, academyID, studentID)

	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusCreated {
		t.Fatalf("first attempt: status %d", rec.Code)
	}

	// finish the open attempt, then the next one gets number 2
	var first model.StudentExamAttemptModel
	if err := db.First(&first, "student_exam_attempt_exam_id = ?", exam.ExamID).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	req := httptest.NewRequest("POST", "/attempts/"+first.StudentExamAttemptID.String()+"/submit", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("submit: status %d, want 200", resp.StatusCode)
	}

	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusCreated {
		t.Fatalf("second attempt: status %d", rec.Code)
	}

	var second model.StudentExamAttemptModel
	if err := db.
		Order("student_exam_attempt_number DESC").
		First(&second, "student_exam_attempt_exam_id = ?", exam.ExamID).Error; err != nil {
		t.Fatalf("load second attempt: %v", err)
	}
	if second.StudentExamAttemptNumber != 2 {
		t.Fatalf("attempt number = %d, want 2", second.StudentExamAttemptNumber)
	}
}

func TestStartAttemptHonorsAttemptLimit(t *testing.T) {
	db := openTestDB(t)
	academyID, studentID := uuid.New(), uuid.New()
	limit := 1
	exam := seedExam(t, db, academyID, &limit)
	app := newTestApp(db, academyID, studentID)

	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusCreated {
		t.Fatalf("first attempt: status %d", rec.Code)
	}
	var first model.StudentExamAttemptModel
	if err := db.First(&first, "student_exam_attempt_exam_id = ?", exam.ExamID).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	req := httptest.NewRequest("POST", "/attempts/"+first.StudentExamAttemptID.String()+"/submit", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	resp.Body.Close()

	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusForbidden {
		t.Fatalf("over the limit: status %d, want 403", rec.Code)
	}
}

func TestAbandonAttemptLeavesSubmittedAtUnset(t *testing.T) {
	db := openTestDB(t)
	academyID, studentID := uuid.New(), uuid.New()
	exam := seedExam(t, db, academyID, nil)
	app := newTestApp(db, academyID, studentID)

	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusCreated {
		t.Fatalf("start: status %d", rec.Code)
	}
	var attempt model.StudentExamAttemptModel
	if err := db.First(&attempt, "student_exam_attempt_exam_id = ?", exam.ExamID).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}

	req := httptest.NewRequest("POST", "/attempts/"+attempt.StudentExamAttemptID.String()+"/abandon", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("abandon: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("abandon: status %d, want 200", resp.StatusCode)
	}

	if err := db.First(&attempt, "student_exam_attempt_id = ?", attempt.StudentExamAttemptID).Error; err != nil {
		t.Fatalf("reload attempt: %v", err)
	}
	if attempt.StudentExamAttemptStatus != model.AttemptStatusAbandoned {
		t.Fatalf("status = %s, want abandoned", attempt.StudentExamAttemptStatus)
	}
	// an attempt that was never handed in must not carry a hand-in time
	if attempt.StudentExamAttemptSubmittedAt != nil {
		t.Fatalf("submitted_at = %v, want NULL", attempt.StudentExamAttemptSubmittedAt)
	}
}

func TestStartAttemptRequiresPublishedExam(t *testing.T) {
	db := openTestDB(t)
	academyID, studentID := uuid.New(), uuid.New()
	exam := examModel.ExamModel{
		ExamID:        uuid.New(),
		ExamAcademyID: academyID,
		ExamTitle:     "Draft",
		ExamStatus:    "draft",
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}
	app := newTestApp(db, academyID, studentID)

	if rec := startAttempt(t, app, exam.ExamID); rec.Code != fiber.StatusForbidden {
		t.Fatalf("draft exam: status %d, want 403", rec.Code)
	}
}
