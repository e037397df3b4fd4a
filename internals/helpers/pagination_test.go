package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseVia(t *testing.T, target string, opt Options) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseVia(t, "/", DefaultOpts)

	if p.Page != 1 || p.PerPage != 25 {
		t.Fatalf("page/per = %d/%d, want 1/25", p.Page, p.PerPage)
	}
	if p.SortBy != "created_at" || p.SortOrder != "desc" {
		t.Fatalf("sort = %s %s, want created_at desc", p.SortBy, p.SortOrder)
	}
}

func TestParseFiberCapsPerPage(t *testing.T) {
	p := parseVia(t, "/?page=3&per_page=9999&sort_by=name&order=asc", DefaultOpts)

	if p.Page != 3 {
		t.Fatalf("page = %d, want 3", p.Page)
	}
	if p.PerPage != DefaultOpts.MaxPerPage {
		t.Fatalf("per = %d, want cap %d", p.PerPage, DefaultOpts.MaxPerPage)
	}
	if p.SortBy != "name" || p.SortOrder != "asc" {
		t.Fatalf("sort = %s %s, want name asc", p.SortBy, p.SortOrder)
	}
	if p.Offset() != 2*DefaultOpts.MaxPerPage {
		t.Fatalf("offset = %d", p.Offset())
	}
}

func TestParseFiberAllNeedsOptIn(t *testing.T) {
	p := parseVia(t, "/?per_page=all", DefaultOpts)
	if p.All {
		t.Fatalf("per_page=all must be ignored without AllowAll")
	}

	p = parseVia(t, "/?per_page=all&page=7", ExportOpts)
	if !p.All || p.Page != 1 || p.PerPage != ExportOpts.AllHardCap {
		t.Fatalf("all = %v page = %d per = %d, want capped single page", p.All, p.Page, p.PerPage)
	}
}

func TestSafeOrderClauseWhitelists(t *testing.T) {
	allowed := map[string]string{
		"created_at": "class_created_at",
		"name":       "class_name",
	}

	p := Params{SortBy: "name", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil || clause != "ORDER BY class_name ASC" {
		t.Fatalf("clause = %q, %v", clause, err)
	}

	// unknown keys fall back to the default, never pass through
	p = Params{SortBy: "name; DROP TABLE classes", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	if err != nil || clause != "ORDER BY class_created_at DESC" {
		t.Fatalf("clause = %q, %v", clause, err)
	}

	expr, err := p.SafeOrderExpr(allowed, "created_at")
	if err != nil || expr != "class_created_at DESC" {
		t.Fatalf("expr = %q, %v", expr, err)
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})

	if meta.TotalPages != 5 {
		t.Fatalf("total pages = %d, want 5", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Fatalf("page 2 of 5 must have next and prev")
	}
	if meta.NextPage == nil || *meta.NextPage != 3 || meta.PrevPage == nil || *meta.PrevPage != 1 {
		t.Fatalf("next/prev = %v/%v", meta.NextPage, meta.PrevPage)
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty meta = %+v", empty)
	}
}
