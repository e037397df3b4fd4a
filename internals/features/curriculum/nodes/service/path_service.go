package service

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"academylms_backend/internals/features/curriculum/nodes/model"
)

const (
	// Hard ceiling regardless of per-academy settings.
	MaxAllowableDepth = 4

	BreadcrumbSeparator = " > "
	CodePathSeparator   = "."
)

// Path is the materialized ancestor chain of a node, root first.
type Path struct {
	// "CORE > Phonics > Level 1"
	Breadcrumb string `json:"breadcrumb"`
	// "CORE.PHO.L1" - node name used where a code is missing
	CodePath string `json:"code_path"`
	// root-to-leaf node ids
	NodeIDs []uuid.UUID `json:"node_ids"`
}

// NodeLookup resolves a node by id. Returns false when the node does
// not exist (or is soft-deleted).
type NodeLookup func(id uuid.UUID) (*model.CurriculumNodeModel, bool)

// BuildPath walks parent references from node to root and joins
// names/codes in root-to-leaf order. The walk is bounded by
// MaxAllowableDepth, so it terminates even on corrupt data. A dangling
// parent reference is treated as a root and logged as a data-integrity
// warning - never an error.
func BuildPath(node *model.CurriculumNodeModel, lookup NodeLookup) Path {
	chain := make([]*model.CurriculumNodeModel, 0, MaxAllowableDepth)
	cur := node
	for steps := 0; cur != nil && steps < MaxAllowableDepth; steps++ {
		chain = append(chain, cur)
		if cur.CurriculumNodeParentID == nil {
			cur = nil
			break
		}
		parent, ok := lookup(*cur.CurriculumNodeParentID)
		if !ok {
			log.Printf("[WARN] curriculum node %s has dangling parent %s; treating as root",
				cur.CurriculumNodeID, *cur.CurriculumNodeParentID)
			cur = nil
			break
		}
		cur = parent
	}

	// reverse into root-to-leaf order
	names := make([]string, 0, len(chain))
	codes := make([]string, 0, len(chain))
	ids := make([]uuid.UUID, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		names = append(names, n.CurriculumNodeName)
		if n.CurriculumNodeCode != nil && strings.TrimSpace(*n.CurriculumNodeCode) != "" {
			codes = append(codes, strings.TrimSpace(*n.CurriculumNodeCode))
		} else {
			codes = append(codes, n.CurriculumNodeName)
		}
		ids = append(ids, n.CurriculumNodeID)
	}

	return Path{
		Breadcrumb: strings.Join(names, BreadcrumbSeparator),
		CodePath:   strings.Join(codes, CodePathSeparator),
		NodeIDs:    ids,
	}
}

// MapLookup adapts a preloaded id->node map into a NodeLookup.
func MapLookup(nodes map[uuid.UUID]*model.CurriculumNodeModel) NodeLookup {
	return func(id uuid.UUID) (*model.CurriculumNodeModel, bool) {
		n, ok := nodes[id]
		return n, ok
	}
}
