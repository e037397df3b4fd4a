package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/academics/classes/dto"
	"academylms_backend/internals/features/academics/classes/model"
	helper "academylms_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Class
// =============================
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "classes",
		SlugColumn:       "class_slug",
		SoftDeleteColumn: "class_deleted_at",
		Filters:          map[string]any{"class_academy_id": academyID},
		DefaultBase:      "class",
	}, body.ClassName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	class := model.ClassModel{
		ClassAcademyID:        academyID,
		ClassName:             body.ClassName,
		ClassSlug:             slug,
		ClassCode:             body.ClassCode,
		ClassCurriculumNodeID: body.ClassCurriculumNodeID,
		ClassCapacity:         body.ClassCapacity,
		ClassScheduleNote:     body.ClassScheduleNote,
		ClassIsActive:         true,
	}

	if err := ctrl.DB.Create(&class).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class created", dto.ToClassDTO(class))
}

// =============================
// 📄 List Classes
// =============================
func (ctrl *ClassController) GetAllClasses(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"created_at": "class_created_at",
		"name":       "class_name",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.ClassModel{}).
		Where("class_academy_id = ? AND class_deleted_at IS NULL", academyID)

	if nodeID := c.Query("curriculum_node_id"); nodeID != "" {
		q = q.Where("class_curriculum_node_id = ?", nodeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []model.ClassModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	out := make([]dto.ClassDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToClassDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Class By ID
// =============================
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var class model.ClassModel
	if err := ctrl.DB.
		Where("class_academy_id = ? AND class_deleted_at IS NULL", academyID).
		First(&class, "class_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	return c.JSON(dto.ToClassDTO(class))
}

// =============================
// ✏️ Update Class
// =============================
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var class model.ClassModel
	if err := ctrl.DB.
		Where("class_academy_id = ? AND class_deleted_at IS NULL", academyID).
		First(&class, "class_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	updates := map[string]any{}
	if body.ClassName != nil {
		updates["class_name"] = *body.ClassName
	}
	if body.ClassCode != nil {
		updates["class_code"] = *body.ClassCode
	}
	if body.ClassCurriculumNodeID != nil {
		updates["class_curriculum_node_id"] = *body.ClassCurriculumNodeID
	}
	if body.ClassCapacity != nil {
		updates["class_capacity"] = *body.ClassCapacity
	}
	if body.ClassScheduleNote != nil {
		updates["class_schedule_note"] = *body.ClassScheduleNote
	}
	if body.ClassIsActive != nil {
		updates["class_is_active"] = *body.ClassIsActive
	}
	now := time.Now()
	updates["class_updated_at"] = &now

	if err := ctrl.DB.Model(&class).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.Success(c, "Class updated", dto.ToClassDTO(class))
}

// =============================
// ❌ Soft-delete Class
// =============================
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.ClassModel{}).
		Where("class_id = ? AND class_academy_id = ? AND class_deleted_at IS NULL", id, academyID).
		Updates(map[string]any{
			"class_deleted_at": &now,
			"class_is_active":  false,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	return helper.Success(c, "Class deleted", nil)
}
