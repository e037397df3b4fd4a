package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/curriculum/mappings/dto"
	"academylms_backend/internals/features/curriculum/mappings/model"
	nodeModel "academylms_backend/internals/features/curriculum/nodes/model"
	examModel "academylms_backend/internals/features/exams/exams/model"
	helper "academylms_backend/internals/helpers"
)

type CurriculumExamMappingController struct {
	DB *gorm.DB
}

func NewCurriculumExamMappingController(db *gorm.DB) *CurriculumExamMappingController {
	return &CurriculumExamMappingController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Mapping
// =============================
func (ctrl *CurriculumExamMappingController) CreateMapping(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateCurriculumExamMappingRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var mapping model.CurriculumExamMappingModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var node nodeModel.CurriculumNodeModel
		if err := tx.
			Where("curriculum_node_academy_id = ? AND curriculum_node_deleted_at IS NULL", academyID).
			First(&node, "curriculum_node_id = ?", body.CurriculumExamMappingNodeID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Curriculum node not found")
		}
		var exam examModel.ExamModel
		if err := tx.
			Where("exam_academy_id = ? AND exam_deleted_at IS NULL", academyID).
			First(&exam, "exam_id = ?", body.CurriculumExamMappingExamID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Exam not found")
		}

		var count int64
		if err := tx.Model(&model.CurriculumExamMappingModel{}).
			Where(`curriculum_exam_mapping_academy_id = ?
				AND curriculum_exam_mapping_node_id = ?
				AND curriculum_exam_mapping_exam_id = ?
				AND curriculum_exam_mapping_type = ?
				AND curriculum_exam_mapping_deleted_at IS NULL`,
				academyID, body.CurriculumExamMappingNodeID, body.CurriculumExamMappingExamID, body.CurriculumExamMappingType).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Exam is already mapped to this node with the same type")
		}

		slot := 0
		if body.CurriculumExamMappingSlot != nil {
			slot = *body.CurriculumExamMappingSlot
		}
		mapping = model.CurriculumExamMappingModel{
			CurriculumExamMappingAcademyID:    academyID,
			CurriculumExamMappingNodeID:       body.CurriculumExamMappingNodeID,
			CurriculumExamMappingExamID:       body.CurriculumExamMappingExamID,
			CurriculumExamMappingType:         body.CurriculumExamMappingType,
			CurriculumExamMappingSlot:         slot,
			CurriculumExamMappingWeight:       body.CurriculumExamMappingWeight,
			CurriculumExamMappingMinScore:     body.CurriculumExamMappingMinScore,
			CurriculumExamMappingPrerequisite: body.CurriculumExamMappingPrerequisite,
		}
		return tx.Create(&mapping).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create curriculum exam mapping")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Curriculum exam mapping created", dto.ToCurriculumExamMappingDTO(mapping))
}

// =============================
// 📄 List Mappings (filter by node, exam, type)
// =============================
func (ctrl *CurriculumExamMappingController) GetAllMappings(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "slot", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"slot":       "curriculum_exam_mapping_slot",
		"created_at": "curriculum_exam_mapping_created_at",
	}, "slot")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.CurriculumExamMappingModel{}).
		Where("curriculum_exam_mapping_academy_id = ? AND curriculum_exam_mapping_deleted_at IS NULL", academyID)

	if nodeID := c.Query("node_id"); nodeID != "" {
		q = q.Where("curriculum_exam_mapping_node_id = ?", nodeID)
	}
	if examID := c.Query("exam_id"); examID != "" {
		q = q.Where("curriculum_exam_mapping_exam_id = ?", examID)
	}
	if mtype := c.Query("type"); mtype != "" {
		q = q.Where("curriculum_exam_mapping_type = ?", mtype)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count mappings")
	}

	var rows []model.CurriculumExamMappingModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch mappings")
	}

	out := make([]dto.CurriculumExamMappingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToCurriculumExamMappingDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// ✏️ Update Mapping
// =============================
func (ctrl *CurriculumExamMappingController) UpdateMapping(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateCurriculumExamMappingRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var mapping model.CurriculumExamMappingModel
	if err := ctrl.DB.
		Where("curriculum_exam_mapping_academy_id = ? AND curriculum_exam_mapping_deleted_at IS NULL", academyID).
		First(&mapping, "curriculum_exam_mapping_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum exam mapping not found")
	}

	// a type change must not collide with another live mapping
	if body.CurriculumExamMappingType != nil && *body.CurriculumExamMappingType != mapping.CurriculumExamMappingType {
		var count int64
		if err := ctrl.DB.Model(&model.CurriculumExamMappingModel{}).
			Where(`curriculum_exam_mapping_academy_id = ?
				AND curriculum_exam_mapping_node_id = ?
				AND curriculum_exam_mapping_exam_id = ?
				AND curriculum_exam_mapping_type = ?
				AND curriculum_exam_mapping_id <> ?
				AND curriculum_exam_mapping_deleted_at IS NULL`,
				academyID, mapping.CurriculumExamMappingNodeID, mapping.CurriculumExamMappingExamID,
				*body.CurriculumExamMappingType, mapping.CurriculumExamMappingID).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check mapping uniqueness")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Exam is already mapped to this node with the same type")
		}
	}

	updates := map[string]any{}
	if body.CurriculumExamMappingType != nil {
		updates["curriculum_exam_mapping_type"] = *body.CurriculumExamMappingType
	}
	if body.CurriculumExamMappingSlot != nil {
		updates["curriculum_exam_mapping_slot"] = *body.CurriculumExamMappingSlot
	}
	if body.CurriculumExamMappingWeight != nil {
		updates["curriculum_exam_mapping_weight"] = *body.CurriculumExamMappingWeight
	}
	if body.CurriculumExamMappingMinScore != nil {
		updates["curriculum_exam_mapping_min_score"] = *body.CurriculumExamMappingMinScore
	}
	if body.CurriculumExamMappingPrerequisite != nil {
		updates["curriculum_exam_mapping_prerequisite"] = body.CurriculumExamMappingPrerequisite
	}
	now := time.Now()
	updates["curriculum_exam_mapping_updated_at"] = &now

	if err := ctrl.DB.Model(&mapping).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update curriculum exam mapping")
	}

	return helper.Success(c, "Curriculum exam mapping updated", dto.ToCurriculumExamMappingDTO(mapping))
}

// =============================
// ❌ Soft-delete Mapping
// =============================
func (ctrl *CurriculumExamMappingController) DeleteMapping(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.CurriculumExamMappingModel{}).
		Where("curriculum_exam_mapping_id = ? AND curriculum_exam_mapping_academy_id = ? AND curriculum_exam_mapping_deleted_at IS NULL", id, academyID).
		Update("curriculum_exam_mapping_deleted_at", &now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete curriculum exam mapping")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum exam mapping not found")
	}

	return helper.Success(c, "Curriculum exam mapping deleted", nil)
}
