package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"academylms_backend/internals/features/curriculum/nodes/model"
	settingsModel "academylms_backend/internals/features/curriculum/settings/model"
)

var (
	ErrDepthExceeded  = errors.New("curriculum: depth exceeds academy max depth")
	ErrParentNotFound = errors.New("curriculum: parent node not found")
	ErrCycle          = errors.New("curriculum: reparenting would create a cycle")
)

// TreeService owns the curriculum tree invariants: depth guard, cycle
// guard, and soft-delete cascade. All lookups are scoped to one academy
// and ignore soft-deleted rows.
type TreeService struct {
	DB *gorm.DB
}

func NewTreeService(db *gorm.DB) *TreeService {
	return &TreeService{DB: db}
}

// ResolveMaxDepth returns the academy's configured max depth. An
// academy without a settings row gets the full MaxAllowableDepth -
// documented default, not an error.
func (s *TreeService) ResolveMaxDepth(tx *gorm.DB, academyID uuid.UUID) (int, error) {
	var settings settingsModel.CurriculumSettingsModel
	err := tx.
		Where("curriculum_settings_academy_id = ? AND curriculum_settings_deleted_at IS NULL", academyID).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MaxAllowableDepth, nil
		}
		return 0, err
	}
	if settings.CurriculumSettingsMaxDepth < 1 || settings.CurriculumSettingsMaxDepth > MaxAllowableDepth {
		return MaxAllowableDepth, nil
	}
	return settings.CurriculumSettingsMaxDepth, nil
}

// ComputeDepth derives a node's depth from its parent: 1 for roots,
// parent.depth+1 otherwise. Depth is never taken from client input.
func (s *TreeService) ComputeDepth(tx *gorm.DB, academyID uuid.UUID, parentID *uuid.UUID) (int, error) {
	if parentID == nil {
		return 1, nil
	}
	var parent model.CurriculumNodeModel
	err := tx.
		Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
		First(&parent, "curriculum_node_id = ?", *parentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrParentNotFound
		}
		return 0, err
	}
	return parent.CurriculumNodeDepth + 1, nil
}

// GuardDepth rejects a depth beyond the academy's configured maximum.
func (s *TreeService) GuardDepth(tx *gorm.DB, academyID uuid.UUID, depth int) error {
	maxDepth, err := s.ResolveMaxDepth(tx, academyID)
	if err != nil {
		return err
	}
	if depth > maxDepth {
		return fmt.Errorf("%w: depth %d > max %d", ErrDepthExceeded, depth, maxDepth)
	}
	return nil
}

// WouldCreateCycle reports whether putting nodeID under newParentID
// would make the node its own ancestor. The upward walk is bounded by
// MaxAllowableDepth+1 steps, so it terminates even on corrupt data.
func (s *TreeService) WouldCreateCycle(tx *gorm.DB, academyID, nodeID uuid.UUID, newParentID *uuid.UUID) (bool, error) {
	if newParentID == nil {
		return false, nil
	}
	cur := *newParentID
	for steps := 0; steps <= MaxAllowableDepth; steps++ {
		if cur == nodeID {
			return true, nil
		}
		var parent model.CurriculumNodeModel
		err := tx.
			Select("curriculum_node_id", "curriculum_node_parent_id").
			Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
			First(&parent, "curriculum_node_id = ?", cur).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil // dangling parent -> walk ends
			}
			return false, err
		}
		if parent.CurriculumNodeParentID == nil {
			return false, nil
		}
		cur = *parent.CurriculumNodeParentID
	}
	// walk did not reach a root within the bound - corrupt chain; be safe
	return true, nil
}

// SubtreeRelativeDepth returns the height of the subtree rooted at
// nodeID (1 = leaf). Used when reparenting so the deepest descendant
// still fits under the max depth.
func (s *TreeService) SubtreeRelativeDepth(tx *gorm.DB, academyID, nodeID uuid.UUID) (int, error) {
	height := 1
	frontier := []uuid.UUID{nodeID}
	for level := 1; level <= MaxAllowableDepth && len(frontier) > 0; level++ {
		var children []model.CurriculumNodeModel
		err := tx.
			Select("curriculum_node_id").
			Where("curriculum_node_academy_id = ? AND curriculum_node_parent_id IN ? AND curriculum_node_deleted_at IS NULL", academyID, frontier).
			Find(&children).Error
		if err != nil {
			return 0, err
		}
		if len(children) == 0 {
			break
		}
		height = level + 1
		next := make([]uuid.UUID, 0, len(children))
		for _, ch := range children {
			next = append(next, ch.CurriculumNodeID)
		}
		frontier = next
	}
	return height, nil
}

// Reparent moves a node (and its subtree) under a new parent, guarding
// against cycles and depth overflow, and rewriting descendant depths.
func (s *TreeService) Reparent(tx *gorm.DB, academyID uuid.UUID, node *model.CurriculumNodeModel, newParentID *uuid.UUID) error {
	cycle, err := s.WouldCreateCycle(tx, academyID, node.CurriculumNodeID, newParentID)
	if err != nil {
		return err
	}
	if cycle {
		return ErrCycle
	}

	newDepth, err := s.ComputeDepth(tx, academyID, newParentID)
	if err != nil {
		return err
	}

	height, err := s.SubtreeRelativeDepth(tx, academyID, node.CurriculumNodeID)
	if err != nil {
		return err
	}
	if err := s.GuardDepth(tx, academyID, newDepth+height-1); err != nil {
		return err
	}

	shift := newDepth - node.CurriculumNodeDepth
	now := time.Now()
	if err := tx.Model(&model.CurriculumNodeModel{}).
		Where("curriculum_node_id = ?", node.CurriculumNodeID).
		Updates(map[string]any{
			"curriculum_node_parent_id":  newParentID,
			"curriculum_node_depth":      newDepth,
			"curriculum_node_updated_at": &now,
		}).Error; err != nil {
		return err
	}
	node.CurriculumNodeParentID = newParentID
	node.CurriculumNodeDepth = newDepth

	if shift == 0 {
		return nil
	}

	// shift descendant depths level by level
	frontier := []uuid.UUID{node.CurriculumNodeID}
	for level := 0; level < MaxAllowableDepth && len(frontier) > 0; level++ {
		var children []model.CurriculumNodeModel
		if err := tx.
			Select("curriculum_node_id").
			Where("curriculum_node_academy_id = ? AND curriculum_node_parent_id IN ? AND curriculum_node_deleted_at IS NULL", academyID, frontier).
			Find(&children).Error; err != nil {
			return err
		}
		if len(children) == 0 {
			break
		}
		ids := make([]uuid.UUID, 0, len(children))
		for _, ch := range children {
			ids = append(ids, ch.CurriculumNodeID)
		}
		if err := tx.Model(&model.CurriculumNodeModel{}).
			Where("curriculum_node_id IN ?", ids).
			Updates(map[string]any{
				"curriculum_node_depth":      gorm.Expr("curriculum_node_depth + ?", shift),
				"curriculum_node_updated_at": &now,
			}).Error; err != nil {
			return err
		}
		frontier = ids
	}
	return nil
}

// SoftDeleteSubtree marks a node and all live descendants deleted in
// one pass per level, inside the caller's transaction.
func (s *TreeService) SoftDeleteSubtree(tx *gorm.DB, academyID, nodeID uuid.UUID) (int64, error) {
	now := time.Now()
	var affected int64

	frontier := []uuid.UUID{nodeID}
	for level := 0; level <= MaxAllowableDepth && len(frontier) > 0; level++ {
		res := tx.Model(&model.CurriculumNodeModel{}).
			Where("curriculum_node_academy_id = ? AND curriculum_node_id IN ? AND curriculum_node_deleted_at IS NULL", academyID, frontier).
			Update("curriculum_node_deleted_at", &now)
		if res.Error != nil {
			return affected, res.Error
		}
		affected += res.RowsAffected

		var children []model.CurriculumNodeModel
		if err := tx.
			Select("curriculum_node_id").
			Where("curriculum_node_academy_id = ? AND curriculum_node_parent_id IN ? AND curriculum_node_deleted_at IS NULL", academyID, frontier).
			Find(&children).Error; err != nil {
			return affected, err
		}
		next := make([]uuid.UUID, 0, len(children))
		for _, ch := range children {
			next = append(next, ch.CurriculumNodeID)
		}
		frontier = next
	}
	return affected, nil
}

// MaterializePath loads the ancestor chain from the DB and builds the
// breadcrumb/code path for one node.
func (s *TreeService) MaterializePath(tx *gorm.DB, academyID uuid.UUID, node *model.CurriculumNodeModel) (Path, error) {
	lookup := func(id uuid.UUID) (*model.CurriculumNodeModel, bool) {
		var n model.CurriculumNodeModel
		err := tx.
			Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
			First(&n, "curriculum_node_id = ?", id).Error
		if err != nil {
			return nil, false
		}
		return &n, true
	}
	return BuildPath(node, lookup), nil
}
