package service

import (
	"testing"

	"github.com/google/uuid"

	"academylms_backend/internals/features/curriculum/nodes/model"
)

func strPtr(s string) *string { return &s }

func chainOf(t *testing.T, specs []struct {
	name string
	code *string
}) (map[uuid.UUID]*model.CurriculumNodeModel, *model.CurriculumNodeModel) {
	t.Helper()
	nodes := make(map[uuid.UUID]*model.CurriculumNodeModel, len(specs))
	var parentID *uuid.UUID
	var leaf *model.CurriculumNodeModel
	for i, s := range specs {
		n := &model.CurriculumNodeModel{
			CurriculumNodeID:       uuid.New(),
			CurriculumNodeParentID: parentID,
			CurriculumNodeDepth:    i + 1,
			CurriculumNodeName:     s.name,
			CurriculumNodeCode:     s.code,
		}
		nodes[n.CurriculumNodeID] = n
		id := n.CurriculumNodeID
		parentID = &id
		leaf = n
	}
	return nodes, leaf
}

func TestBuildPathBreadcrumb(t *testing.T) {
	nodes, leaf := chainOf(t, []struct {
		name string
		code *string
	}{
		{"CORE", strPtr("CORE")},
		{"Phonics", strPtr("PHO")},
		{"Level 1", strPtr("L1")},
	})

	path := BuildPath(leaf, MapLookup(nodes))

	if path.Breadcrumb != "CORE > Phonics > Level 1" {
		t.Fatalf("breadcrumb = %q, want %q", path.Breadcrumb, "CORE > Phonics > Level 1")
	}
	if path.CodePath != "CORE.PHO.L1" {
		t.Fatalf("code path = %q, want %q", path.CodePath, "CORE.PHO.L1")
	}
	if len(path.NodeIDs) != 3 {
		t.Fatalf("node ids = %d, want 3", len(path.NodeIDs))
	}
	if path.NodeIDs[2] != leaf.CurriculumNodeID {
		t.Fatalf("node ids not in root-to-leaf order")
	}
}

func TestBuildPathCodeFallsBackToName(t *testing.T) {
	nodes, leaf := chainOf(t, []struct {
		name string
		code *string
	}{
		{"CORE", strPtr("CORE")},
		{"Phonics", nil},
		{"Level 1", strPtr("  ")}, // blank code also falls back
	})

	path := BuildPath(leaf, MapLookup(nodes))

	if path.CodePath != "CORE.Phonics.Level 1" {
		t.Fatalf("code path = %q, want name fallback", path.CodePath)
	}
}

func TestBuildPathSingleRoot(t *testing.T) {
	nodes, leaf := chainOf(t, []struct {
		name string
		code *string
	}{
		{"CORE", strPtr("CORE")},
	})

	path := BuildPath(leaf, MapLookup(nodes))

	if path.Breadcrumb != "CORE" {
		t.Fatalf("breadcrumb = %q, want %q", path.Breadcrumb, "CORE")
	}
}

func TestBuildPathDanglingParentTreatedAsRoot(t *testing.T) {
	missing := uuid.New()
	node := &model.CurriculumNodeModel{
		CurriculumNodeID:       uuid.New(),
		CurriculumNodeParentID: &missing,
		CurriculumNodeDepth:    2,
		CurriculumNodeName:     "Orphan",
	}

	path := BuildPath(node, MapLookup(map[uuid.UUID]*model.CurriculumNodeModel{
		node.CurriculumNodeID: node,
	}))

	if path.Breadcrumb != "Orphan" {
		t.Fatalf("breadcrumb = %q, want dangling parent treated as root", path.Breadcrumb)
	}
}

func TestBuildPathTerminatesOnCycle(t *testing.T) {
	a := &model.CurriculumNodeModel{CurriculumNodeID: uuid.New(), CurriculumNodeName: "A"}
	b := &model.CurriculumNodeModel{CurriculumNodeID: uuid.New(), CurriculumNodeName: "B"}
	a.CurriculumNodeParentID = &b.CurriculumNodeID
	b.CurriculumNodeParentID = &a.CurriculumNodeID

	// must not loop forever; the walk is bounded by MaxAllowableDepth
	path := BuildPath(a, MapLookup(map[uuid.UUID]*model.CurriculumNodeModel{
		a.CurriculumNodeID: a,
		b.CurriculumNodeID: b,
	}))

	if len(path.NodeIDs) > MaxAllowableDepth {
		t.Fatalf("walk visited %d nodes, bound is %d", len(path.NodeIDs), MaxAllowableDepth)
	}
}
