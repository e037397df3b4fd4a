package helper

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"English Academy Jakarta", "english-academy-jakarta"},
		{"  Kelas 1-A  ", "kelas-1-a"},
		{"Héllo Wörld", "héllo-wörld"},
		{"!!!", ""},
		{"a---b", "a-b"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateUniqueSlugSuffixes(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(`CREATE TABLE classes (
		class_id INTEGER PRIMARY KEY AUTOINCREMENT,
		class_academy_id TEXT NOT NULL,
		class_slug TEXT NOT NULL,
		class_deleted_at DATETIME
	)`).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}

	opts := SlugOptions{
		Table:            "classes",
		SlugColumn:       "class_slug",
		SoftDeleteColumn: "class_deleted_at",
		Filters:          map[string]any{"class_academy_id": "acad-1"},
		DefaultBase:      "class",
	}

	first, err := GenerateUniqueSlug(db, opts, "Beginner A")
	if err != nil || first != "beginner-a" {
		t.Fatalf("first = %q, %v", first, err)
	}
	if err := db.Exec(`INSERT INTO classes (class_academy_id, class_slug) VALUES ('acad-1', 'beginner-a')`).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	second, err := GenerateUniqueSlug(db, opts, "Beginner A")
	if err != nil || second != "beginner-a-2" {
		t.Fatalf("second = %q, %v", second, err)
	}

	// other tenants don't collide
	otherTenant := opts
	otherTenant.Filters = map[string]any{"class_academy_id": "acad-2"}
	other, err := GenerateUniqueSlug(db, otherTenant, "Beginner A")
	if err != nil || other != "beginner-a" {
		t.Fatalf("other tenant = %q, %v", other, err)
	}

	// soft-deleted rows free their slug
	if err := db.Exec(`UPDATE classes SET class_deleted_at = CURRENT_TIMESTAMP WHERE class_slug = 'beginner-a'`).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	freed, err := GenerateUniqueSlug(db, opts, "Beginner A")
	if err != nil || freed != "beginner-a" {
		t.Fatalf("freed = %q, %v", freed, err)
	}

	// empty base falls back to DefaultBase
	fallback, err := GenerateUniqueSlug(db, opts, "!!!")
	if err != nil || fallback != "class" {
		t.Fatalf("fallback = %q, %v", fallback, err)
	}
}
