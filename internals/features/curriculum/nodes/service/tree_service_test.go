package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"academylms_backend/internals/features/curriculum/nodes/model"
	settingsModel "academylms_backend/internals/features/curriculum/settings/model"
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
		`CREATE TABLE curriculum_settings (
			curriculum_settings_id TEXT PRIMARY KEY,
			curriculum_settings_academy_id TEXT NOT NULL,
			curriculum_settings_max_depth INTEGER NOT NULL DEFAULT 4,
			curriculum_settings_level1_name TEXT NOT NULL DEFAULT 'Program',
			curriculum_settings_level2_name TEXT NOT NULL DEFAULT 'SubProgram',
			curriculum_settings_level3_name TEXT NOT NULL DEFAULT 'Level',
			curriculum_settings_level4_name TEXT NOT NULL DEFAULT 'Unit',
			curriculum_settings_created_at DATETIME,
			curriculum_settings_updated_at DATETIME,
			curriculum_settings_deleted_at DATETIME
		)`,
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
	} {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func mustCreateNode(t *testing.T, db *gorm.DB, academyID uuid.UUID, parent *model.CurriculumNodeModel, name string) *model.CurriculumNodeModel {
	t.Helper()
	n := &model.CurriculumNodeModel{
		CurriculumNodeID:        uuid.New(),
		CurriculumNodeAcademyID: academyID,
		CurriculumNodeDepth:     1,
		CurriculumNodeName:      name,
	}
	if parent != nil {
		n.CurriculumNodeParentID = &parent.CurriculumNodeID
		n.CurriculumNodeDepth = parent.CurriculumNodeDepth + 1
	}
	if err := db.Create(n).Error; err != nil {
		t.Fatalf("create node %s: %v", name, err)
	}
	return n
}

func TestComputeDepthDerivedFromParent(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	root := mustCreateNode(t, db, academyID, nil, "CORE")

	depth, err := svc.ComputeDepth(db, academyID, nil)
	if err != nil || depth != 1 {
		t.Fatalf("root depth = %d, %v; want 1, nil", depth, err)
	}

	depth, err = svc.ComputeDepth(db, academyID, &root.CurriculumNodeID)
	if err != nil || depth != 2 {
		t.Fatalf("child depth = %d, %v; want 2, nil", depth, err)
	}

	missing := uuid.New()
	if _, err := svc.ComputeDepth(db, academyID, &missing); !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("missing parent err = %v, want ErrParentNotFound", err)
	}
}

func TestGuardDepthDefaultsToFourWithoutSettings(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	if err := svc.GuardDepth(db, academyID, 4); err != nil {
		t.Fatalf("depth 4 without settings: %v, want allowed", err)
	}
	if err := svc.GuardDepth(db, academyID, 5); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("depth 5 err = %v, want ErrDepthExceeded", err)
	}
}

func TestGuardDepthHonorsAcademyMaxDepth(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	if err := db.Create(&settingsModel.CurriculumSettingsModel{
		CurriculumSettingsID:        uuid.New(),
		CurriculumSettingsAcademyID: academyID,
		CurriculumSettingsMaxDepth:  3,
	}).Error; err != nil {
		t.Fatalf("create settings: %v", err)
	}

	if err := svc.GuardDepth(db, academyID, 3); err != nil {
		t.Fatalf("depth 3 with max 3: %v, want allowed", err)
	}
	if err := svc.GuardDepth(db, academyID, 4); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("depth 4 with max 3 err = %v, want ErrDepthExceeded", err)
	}
}

func TestWouldCreateCycle(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	root := mustCreateNode(t, db, academyID, nil, "CORE")
	child := mustCreateNode(t, db, academyID, root, "Phonics")
	grandchild := mustCreateNode(t, db, academyID, child, "Level 1")

	// moving the root under its own grandchild
	cycle, err := svc.WouldCreateCycle(db, academyID, root.CurriculumNodeID, &grandchild.CurriculumNodeID)
	if err != nil {
		t.Fatalf("cycle check: %v", err)
	}
	if !cycle {
		t.Fatalf("root under grandchild must be a cycle")
	}

	// moving a leaf under the root is fine
	cycle, err = svc.WouldCreateCycle(db, academyID, grandchild.CurriculumNodeID, &root.CurriculumNodeID)
	if err != nil {
		t.Fatalf("cycle check: %v", err)
	}
	if cycle {
		t.Fatalf("leaf under root must not be a cycle")
	}
}

func TestReparentShiftsDescendantDepths(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	rootA := mustCreateNode(t, db, academyID, nil, "A")
	rootB := mustCreateNode(t, db, academyID, nil, "B")
	child := mustCreateNode(t, db, academyID, rootB, "B1")
	grandchild := mustCreateNode(t, db, academyID, child, "B1a")

	// move B under A: B 1->2, B1 2->3, B1a 3->4
	if err := svc.Reparent(db, academyID, rootB, &rootA.CurriculumNodeID); err != nil {
		t.Fatalf("reparent: %v", err)
	}
	if rootB.CurriculumNodeDepth != 2 {
		t.Fatalf("moved node depth = %d, want 2", rootB.CurriculumNodeDepth)
	}

	var got model.CurriculumNodeModel
	if err := db.First(&got, "curriculum_node_id = ?", grandchild.CurriculumNodeID).Error; err != nil {
		t.Fatalf("reload grandchild: %v", err)
	}
	if got.CurriculumNodeDepth != 4 {
		t.Fatalf("grandchild depth = %d, want 4", got.CurriculumNodeDepth)
	}
}

func TestReparentRejectsDepthOverflow(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	root := mustCreateNode(t, db, academyID, nil, "CORE")
	l2 := mustCreateNode(t, db, academyID, root, "Phonics")
	mustCreateNode(t, db, academyID, l2, "Level 1")

	other := mustCreateNode(t, db, academyID, nil, "Other")
	o2 := mustCreateNode(t, db, academyID, other, "O2")

	// the 3-deep subtree under depth 2 would need depth 5 > max 4
	err := svc.Reparent(db, academyID, root, &o2.CurriculumNodeID)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("reparent err = %v, want ErrDepthExceeded", err)
	}
}

func TestReparentRejectsCycle(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	root := mustCreateNode(t, db, academyID, nil, "CORE")
	child := mustCreateNode(t, db, academyID, root, "Phonics")

	if err := svc.Reparent(db, academyID, root, &child.CurriculumNodeID); !errors.Is(err, ErrCycle) {
		t.Fatalf("reparent err = %v, want ErrCycle", err)
	}
}

func TestSoftDeleteSubtreeCascades(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	root := mustCreateNode(t, db, academyID, nil, "CORE")
	child := mustCreateNode(t, db, academyID, root, "Phonics")
	mustCreateNode(t, db, academyID, child, "Level 1")
	sibling := mustCreateNode(t, db, academyID, nil, "Other")

	affected, err := svc.SoftDeleteSubtree(db, academyID, root.CurriculumNodeID)
	if err != nil {
		t.Fatalf("soft delete subtree: %v", err)
	}
	if affected != 3 {
		t.Fatalf("affected = %d, want 3", affected)
	}

	var live int64
	if err := db.Model(&model.CurriculumNodeModel{}).
		Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
		Count(&live).Error; err != nil {
		t.Fatalf("count live: %v", err)
	}
	if live != 1 {
		t.Fatalf("live nodes = %d, want only the sibling", live)
	}

	var check model.CurriculumNodeModel
	if err := db.First(&check, "curriculum_node_id = ?", sibling.CurriculumNodeID).Error; err != nil {
		t.Fatalf("reload sibling: %v", err)
	}
	if check.CurriculumNodeDeletedAt != nil {
		t.Fatalf("sibling must stay live")
	}
}

func TestMaterializePathReadsAncestorsFromDB(t *testing.T) {
	db := openTestDB(t)
	svc := NewTreeService(db)
	academyID := uuid.New()

	root := mustCreateNode(t, db, academyID, nil, "CORE")
	child := mustCreateNode(t, db, academyID, root, "Phonics")
	leaf := mustCreateNode(t, db, academyID, child, "Level 1")

	path, err := svc.MaterializePath(db, academyID, leaf)
	if err != nil {
		t.Fatalf("materialize path: %v", err)
	}
	if path.Breadcrumb != "CORE > Phonics > Level 1" {
		t.Fatalf("breadcrumb = %q", path.Breadcrumb)
	}
}
