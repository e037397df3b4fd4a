package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academylms_backend/internals/features/curriculum/nodes/dto"
	"academylms_backend/internals/features/curriculum/nodes/model"
	"academylms_backend/internals/features/curriculum/nodes/service"
	helper "academylms_backend/internals/helpers"
)

type CurriculumNodeController struct {
	DB   *gorm.DB
	Tree *service.TreeService
}

func NewCurriculumNodeController(db *gorm.DB) *CurriculumNodeController {
	return &CurriculumNodeController{DB: db, Tree: service.NewTreeService(db)}
}

var validate = validator.New()

// treeErrToHTTP maps tree-invariant violations onto client errors; any
// other error stays a 500.
func treeErrToHTTP(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrDepthExceeded):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrParentNotFound):
		return fiber.NewError(fiber.StatusBadRequest, "Parent node not found")
	case errors.Is(err, service.ErrCycle):
		return fiber.NewError(fiber.StatusConflict, "Move rejected: node cannot become its own ancestor")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, fallback)
	}
}

// =============================
// ➕ Create Node
// =============================
func (ctrl *CurriculumNodeController) CreateNode(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateCurriculumNodeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.CurriculumNodeTargetGradeMin != nil && body.CurriculumNodeTargetGradeMax != nil &&
		*body.CurriculumNodeTargetGradeMin > *body.CurriculumNodeTargetGradeMax {
		return fiber.NewError(fiber.StatusBadRequest, "Target grade min cannot exceed max")
	}

	var node model.CurriculumNodeModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		depth, err := ctrl.Tree.ComputeDepth(tx, academyID, body.CurriculumNodeParentID)
		if err != nil {
			return err
		}
		if err := ctrl.Tree.GuardDepth(tx, academyID, depth); err != nil {
			return err
		}

		sortOrder := 0
		if body.CurriculumNodeSortOrder != nil {
			sortOrder = *body.CurriculumNodeSortOrder
		} else {
			// append after the current last sibling
			var maxSort *int
			row := tx.Model(&model.CurriculumNodeModel{}).
				Select("MAX(curriculum_node_sort_order)").
				Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID)
			if body.CurriculumNodeParentID == nil {
				row = row.Where("curriculum_node_parent_id IS NULL")
			} else {
				row = row.Where("curriculum_node_parent_id = ?", *body.CurriculumNodeParentID)
			}
			if err := row.Scan(&maxSort).Error; err != nil {
				return err
			}
			if maxSort != nil {
				sortOrder = *maxSort + 1
			}
		}

		node = model.CurriculumNodeModel{
			CurriculumNodeAcademyID:      academyID,
			CurriculumNodeParentID:       body.CurriculumNodeParentID,
			CurriculumNodeDepth:          depth,
			CurriculumNodeSortOrder:      sortOrder,
			CurriculumNodeName:           body.CurriculumNodeName,
			CurriculumNodeCode:           body.CurriculumNodeCode,
			CurriculumNodeDescription:    body.CurriculumNodeDescription,
			CurriculumNodeTargetGradeMin: body.CurriculumNodeTargetGradeMin,
			CurriculumNodeTargetGradeMax: body.CurriculumNodeTargetGradeMax,
			CurriculumNodeCapacity:       body.CurriculumNodeCapacity,
		}
		return tx.Create(&node).Error
	})
	if txErr != nil {
		return treeErrToHTTP(txErr, "Failed to create curriculum node")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Curriculum node created", dto.ToCurriculumNodeDTO(node))
}

// =============================
// 📄 List Nodes (flat, filterable by parent/depth)
// =============================
func (ctrl *CurriculumNodeController) GetAllNodes(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "sort_order", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"sort_order": "curriculum_node_sort_order",
		"created_at": "curriculum_node_created_at",
		"name":       "curriculum_node_name",
		"depth":      "curriculum_node_depth",
	}, "sort_order")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.CurriculumNodeModel{}).
		Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID)

	switch parent := c.Query("parent_id"); parent {
	case "":
		// no filter
	case "root":
		q = q.Where("curriculum_node_parent_id IS NULL")
	default:
		q = q.Where("curriculum_node_parent_id = ?", parent)
	}
	if depth := c.QueryInt("depth"); depth > 0 {
		q = q.Where("curriculum_node_depth = ?", depth)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count curriculum nodes")
	}

	var rows []model.CurriculumNodeModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch curriculum nodes")
	}

	out := make([]dto.CurriculumNodeDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToCurriculumNodeDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Node By ID (with materialized path)
// =============================
func (ctrl *CurriculumNodeController) GetNodeByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var node model.CurriculumNodeModel
	if err := ctrl.DB.
		Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
		First(&node, "curriculum_node_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum node not found")
	}

	path, err := ctrl.Tree.MaterializePath(ctrl.DB, academyID, &node)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build node path")
	}

	return c.JSON(dto.CurriculumNodePathDTO{
		CurriculumNodeDTO: dto.ToCurriculumNodeDTO(node),
		Path:              path,
	})
}

// =============================
// ✏️ Update Node (attributes only; reparenting has its own endpoint)
// =============================
func (ctrl *CurriculumNodeController) UpdateNode(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateCurriculumNodeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var node model.CurriculumNodeModel
	if err := ctrl.DB.
		Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
		First(&node, "curriculum_node_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum node not found")
	}

	gradeMin := node.CurriculumNodeTargetGradeMin
	gradeMax := node.CurriculumNodeTargetGradeMax
	if body.CurriculumNodeTargetGradeMin != nil {
		gradeMin = body.CurriculumNodeTargetGradeMin
	}
	if body.CurriculumNodeTargetGradeMax != nil {
		gradeMax = body.CurriculumNodeTargetGradeMax
	}
	if gradeMin != nil && gradeMax != nil && *gradeMin > *gradeMax {
		return fiber.NewError(fiber.StatusBadRequest, "Target grade min cannot exceed max")
	}

	updates := map[string]any{}
	if body.CurriculumNodeName != nil {
		updates["curriculum_node_name"] = *body.CurriculumNodeName
	}
	if body.CurriculumNodeCode != nil {
		updates["curriculum_node_code"] = *body.CurriculumNodeCode
	}
	if body.CurriculumNodeDescription != nil {
		updates["curriculum_node_description"] = *body.CurriculumNodeDescription
	}
	if body.CurriculumNodeSortOrder != nil {
		updates["curriculum_node_sort_order"] = *body.CurriculumNodeSortOrder
	}
	if body.CurriculumNodeTargetGradeMin != nil {
		updates["curriculum_node_target_grade_min"] = *body.CurriculumNodeTargetGradeMin
	}
	if body.CurriculumNodeTargetGradeMax != nil {
		updates["curriculum_node_target_grade_max"] = *body.CurriculumNodeTargetGradeMax
	}
	if body.CurriculumNodeCapacity != nil {
		updates["curriculum_node_capacity"] = *body.CurriculumNodeCapacity
	}
	now := time.Now()
	updates["curriculum_node_updated_at"] = &now

	if err := ctrl.DB.Model(&node).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update curriculum node")
	}

	return helper.Success(c, "Curriculum node updated", dto.ToCurriculumNodeDTO(node))
}

// =============================
// ✏️ Reparent Node (cycle + depth guards, descendant depth rewrite)
// =============================
func (ctrl *CurriculumNodeController) ReparentNode(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.ReparentCurriculumNodeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	var node model.CurriculumNodeModel
	if err := ctrl.DB.
		Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
		First(&node, "curriculum_node_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum node not found")
	}

	if body.CurriculumNodeParentID != nil && *body.CurriculumNodeParentID == node.CurriculumNodeID {
		return fiber.NewError(fiber.StatusConflict, "Move rejected: node cannot become its own ancestor")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return ctrl.Tree.Reparent(tx, academyID, &node, body.CurriculumNodeParentID)
	})
	if txErr != nil {
		return treeErrToHTTP(txErr, "Failed to move curriculum node")
	}

	return helper.Success(c, "Curriculum node moved", dto.ToCurriculumNodeDTO(node))
}

// =============================
// ✏️ Reorder Siblings
// =============================
func (ctrl *CurriculumNodeController) ReorderNodes(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.ReorderCurriculumNodesRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for i, nodeID := range body.NodeIDs {
			res := tx.Model(&model.CurriculumNodeModel{}).
				Where("curriculum_node_id = ? AND curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", nodeID, academyID).
				Updates(map[string]any{
					"curriculum_node_sort_order": i,
					"curriculum_node_updated_at": &now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Curriculum node not found: "+nodeID.String())
			}
		}
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reorder curriculum nodes")
	}

	return helper.Success(c, "Curriculum nodes reordered", nil)
}

// =============================
// 📄 Tree (nested, for the academy's program browser)
// =============================
type treeNode struct {
	dto.CurriculumNodeDTO
	Children []*treeNode `json:"children"`
}

func (ctrl *CurriculumNodeController) GetTree(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.CurriculumNodeModel
	if err := ctrl.DB.
		Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
		Order("curriculum_node_depth ASC, curriculum_node_sort_order ASC, curriculum_node_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch curriculum tree")
	}

	byID := make(map[uuid.UUID]*treeNode, len(rows))
	roots := make([]*treeNode, 0)
	for i := range rows {
		byID[rows[i].CurriculumNodeID] = &treeNode{
			CurriculumNodeDTO: dto.ToCurriculumNodeDTO(rows[i]),
			Children:          []*treeNode{},
		}
	}
	for i := range rows {
		n := byID[rows[i].CurriculumNodeID]
		if rows[i].CurriculumNodeParentID == nil {
			roots = append(roots, n)
			continue
		}
		parent, ok := byID[*rows[i].CurriculumNodeParentID]
		if !ok {
			// parent soft-deleted out from under it; surface as root
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	return c.JSON(fiber.Map{"data": roots})
}

// =============================
// ❌ Soft-delete Node (cascades to the whole subtree)
// =============================
func (ctrl *CurriculumNodeController) DeleteNode(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid node id")
	}

	var affected int64
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var node model.CurriculumNodeModel
		if err := tx.
			Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
			First(&node, "curriculum_node_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Curriculum node not found")
			}
			return err
		}
		n, err := ctrl.Tree.SoftDeleteSubtree(tx, academyID, id)
		if err != nil {
			return err
		}
		affected = n
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete curriculum node")
	}

	return helper.Success(c, "Curriculum subtree deleted", fiber.Map{"deleted_count": affected})
}
