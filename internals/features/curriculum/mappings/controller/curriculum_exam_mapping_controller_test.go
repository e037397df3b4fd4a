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

	"academylms_backend/internals/features/curriculum/mappings/model"
	nodeModel "academylms_backend/internals/features/curriculum/nodes/model"
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
		`CREATE TABLE curriculum_nodes (
			curriculum_node_id TEXT PRIMARY KEY,
			curriculum_node_academy_id TEXT NOT NULL,
			curriculum_node_parent_id TEXT,
			curriculum_node_depth INTEGER NOT NULL,
			curriculum_node_sort_order INTEGER NOT NULL DEFAULT 0,
			curriculum_node_name TEXT NOT NULL,
			curriculum_node_code TEXT,
			curriculum_node_description TEXT,
			curriculum_node_target_grade_min INTEGER,
			curriculum_node_target_grade_max INTEGER,
			curriculum_node_capacity INTEGER,
			curriculum_node_created_at DATETIME,
			curriculum_node_updated_at DATETIME,
			curriculum_node_deleted_at DATETIME
		)`,
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
		`CREATE TABLE curriculum_exam_mappings (
			curriculum_exam_mapping_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			curriculum_exam_mapping_academy_id TEXT NOT NULL,
			curriculum_exam_mapping_node_id TEXT NOT NULL,
			curriculum_exam_mapping_exam_id TEXT NOT NULL,
			curriculum_exam_mapping_type TEXT NOT NULL,
			curriculum_exam_mapping_slot INTEGER NOT NULL DEFAULT 0,
			curriculum_exam_mapping_weight REAL,
			curriculum_exam_mapping_min_score REAL,
			curriculum_exam_mapping_prerequisite TEXT,
			curriculum_exam_mapping_created_at DATETIME,
			curriculum_exam_mapping_updated_at DATETIME,
			curriculum_exam_mapping_deleted_at DATETIME
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
	ctrl := NewCurriculumExamMappingController(db)
	app.Post("/curriculum-exam-mappings", ctrl.CreateMapping)
	app.Put("/curriculum-exam-mappings/:id", ctrl.UpdateMapping)
	return app
}

func seedNodeAndExam(t *testing.T, db *gorm.DB, academyID uuid.UUID) (uuid.UUID, uuid.UUID) {
	t.Helper()
	node := nodeModel.CurriculumNodeModel{
		CurriculumNodeID:        uuid.New(),
		CurriculumNodeAcademyID: academyID,
		CurriculumNodeDepth:     1,
		CurriculumNodeName:      "Level 1",
	}
	if err := db.Create(&node).Error; err != nil {
		t.Fatalf("create node: %v", err)
	}
	exam := examModel.ExamModel{
		ExamID:        uuid.New(),
		ExamAcademyID: academyID,
		ExamTitle:     "Placement",
		ExamStatus:    "published",
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}
	return node.CurriculumNodeID, exam.ExamID
}

func createMapping(t *testing.T, app *fiber.App, nodeID, examID uuid.UUID, mtype string) int {
	t.Helper()
	body := fmt.Sprintf(
		`{"curriculum_exam_mapping_node_id": %q, "curriculum_exam_mapping_exam_id": %q, "curriculum_exam_mapping_type": %q}`,
		nodeID, examID, mtype)
	req := httptest.NewRequest("POST", "/curriculum-exam-mappings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateMappingRejectsDuplicate(t *testing.T) {
	db := openTestDB(t)
	academyID := uuid.New()
	nodeID, examID := seedNodeAndExam(t, db, academyID)
	app := newTestApp(db, academyID)

	if code := createMapping(t, app, nodeID, examID, "placement"); code != fiber.StatusCreated {
		t.Fatalf("first mapping: status %d, want 201", code)
	}
	if code := createMapping(t, app, nodeID, examID, "placement"); code != fiber.StatusConflict {
		t.Fatalf("duplicate mapping: status %d, want 409", code)
	}
	// same pair under a different role is a distinct mapping
	if code := createMapping(t, app, nodeID, examID, "final"); code != fiber.StatusCreated {
		t.Fatalf("different type: status %d, want 201", code)
	}
}

func TestCreateMappingFreesSlotAfterSoftDelete(t *testing.T) {
	db := openTestDB(t)
	academyID := uuid.New()
	nodeID, examID := seedNodeAndExam(t, db, academyID)
	app := newTestApp(db, academyID)

	if code := createMapping(t, app, nodeID, examID, "progress"); code != fiber.StatusCreated {
		t.Fatalf("first mapping: status %d, want 201", code)
	}
	if err := db.Exec(
		`UPDATE curriculum_exam_mappings SET curriculum_exam_mapping_deleted_at = CURRENT_TIMESTAMP`,
	).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if code := createMapping(t, app, nodeID, examID, "progress"); code != fiber.StatusCreated {
		t.Fatalf("remap after delete: status %d, want 201", code)
	}
}

func TestUpdateMappingRejectsTypeCollision(t *testing.T) {
	db := openTestDB(t)
	academyID := uuid.New()
	nodeID, examID := seedNodeAndExam(t, db, academyID)
	app := newTestApp(db, academyID)

	if code := createMapping(t, app, nodeID, examID, "placement"); code != fiber.StatusCreated {
		t.Fatalf("placement mapping: status %d", code)
	}
	if code := createMapping(t, app, nodeID, examID, "final"); code != fiber.StatusCreated {
		t.Fatalf("final mapping: status %d", code)
	}

	var final model.CurriculumExamMappingModel
	if err := db.First(&final, "curriculum_exam_mapping_type = ?", "final").Error; err != nil {
		t.Fatalf("load mapping: %v", err)
	}

	put := func(mtype string) int {
		body := fmt.Sprintf(`{"curriculum_exam_mapping_type": %q}`, mtype)
		req := httptest.NewRequest("PUT", "/curriculum-exam-mappings/"+final.CurriculumExamMappingID.String(), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		return resp.StatusCode
	}

	if code := put("placement"); code != fiber.StatusConflict {
		t.Fatalf("type collision: status %d, want 409", code)
	}
	if code := put("diagnostic"); code != fiber.StatusOK {
		t.Fatalf("free type: status %d, want 200", code)
	}
}
