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

	"academylms_backend/internals/features/academics/classes/model"
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
		`CREATE TABLE classes (
			class_id TEXT PRIMARY KEY,
			class_academy_id TEXT NOT NULL,
			class_name TEXT NOT NULL,
			class_slug TEXT NOT NULL,
			class_code TEXT,
			class_curriculum_node_id TEXT,
			class_capacity INTEGER,
			class_schedule_note TEXT,
			class_is_active INTEGER NOT NULL DEFAULT 1,
			class_created_at DATETIME,
			class_updated_at DATETIME,
			class_deleted_at DATETIME
		)`,
		`CREATE TABLE class_teachers (
			class_teacher_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			class_teacher_academy_id TEXT NOT NULL,
			class_teacher_class_id TEXT NOT NULL,
			class_teacher_teacher_id TEXT NOT NULL,
			class_teacher_is_primary INTEGER NOT NULL DEFAULT 0,
			class_teacher_created_at DATETIME,
			class_teacher_updated_at DATETIME,
			class_teacher_deleted_at DATETIME
		)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func newTestApp(db *gorm.DB, academyID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("academy_admin_ids", []string{academyID.String()})
		return c.Next()
	})
	ctrl := NewClassTeacherController(db)
	app.Post("/classes/:class_id/teachers", ctrl.AssignTeacher)
	return app
}

func assignTeacher(t *testing.T, app *fiber.App, classID, teacherID uuid.UUID, primary bool) int {
	t.Helper()
	body := fmt.Sprintf(`{"class_teacher_teacher_id": %q, "class_teacher_is_primary": %v}`, teacherID, primary)
	req := httptest.NewRequest("POST", "/classes/"+classID.String()+"/teachers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAssignTeacherRejectsSecondPrimary(t *testing.T) {
	db := openTestDB(t)
	academyID := uuid.New()

	class := model.ClassModel{
		ClassID:        uuid.New(),
		ClassAcademyID: academyID,
		ClassName:      "Beginner A",
		ClassSlug:      "beginner-a",
		ClassIsActive:  true,
	}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("create class: %v", err)
	}

	app := newTestApp(db, academyID)

	if code := assignTeacher(t, app, class.ClassID, uuid.New(), true); code != fiber.StatusCreated {
		t.Fatalf("first primary: status %d, want 201", code)
	}
	if code := assignTeacher(t, app, class.ClassID, uuid.New(), true); code != fiber.StatusConflict {
		t.Fatalf("second primary: status %d, want 409", code)
	}
	// non-primary co-teacher is still fine
	if code := assignTeacher(t, app, class.ClassID, uuid.New(), false); code != fiber.StatusCreated {
		t.Fatalf("co-teacher: status %d, want 201", code)
	}
}

func TestAssignTeacherRejectsDuplicateAssignment(t *testing.T) {
	db := openTestDB(t)
	academyID := uuid.New()

	class := model.ClassModel{
		ClassID:        uuid.New(),
		ClassAcademyID: academyID,
		ClassName:      "Beginner B",
		ClassSlug:      "beginner-b",
		ClassIsActive:  true,
	}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("create class: %v", err)
	}

	app := newTestApp(db, academyID)
	teacherID := uuid.New()

	if code := assignTeacher(t, app, class.ClassID, teacherID, false); code != fiber.StatusCreated {
		t.Fatalf("first assignment: status %d, want 201", code)
	}
	if code := assignTeacher(t, app, class.ClassID, teacherID, false); code != fiber.StatusConflict {
		t.Fatalf("duplicate assignment: status %d, want 409", code)
	}
}

func TestAssignTeacherUnknownClass(t *testing.T) {
	db := openTestDB(t)
	academyID := uuid.New()
	app := newTestApp(db, academyID)

	if code := assignTeacher(t, app, uuid.New(), uuid.New(), true); code != fiber.StatusNotFound {
		t.Fatalf("unknown class: status %d, want 404", code)
	}
}
