package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/academics/classes/dto"
	"academylms_backend/internals/features/academics/classes/model"
	helper "academylms_backend/internals/helpers"
)

type ClassTeacherController struct {
	DB *gorm.DB
}

func NewClassTeacherController(db *gorm.DB) *ClassTeacherController {
	return &ClassTeacherController{DB: db}
}

// =============================
// ➕ Assign Teacher to Class
// =============================
// At most one live primary teacher per (academy, class). The partial
// unique index is the backstop; the transaction gives the caller a
// clean 409 instead of a raw constraint error.
func (ctrl *ClassTeacherController) AssignTeacher(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	classID := c.Params("class_id")

	var body dto.AssignClassTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var class model.ClassModel
	if err := ctrl.DB.
		Where("class_academy_id = ? AND class_deleted_at IS NULL", academyID).
		First(&class, "class_id = ?", classID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	var row model.ClassTeacherModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if body.ClassTeacherIsPrimary {
			var cnt int64
			if err := tx.Model(&model.ClassTeacherModel{}).
				Where("class_teacher_academy_id = ? AND class_teacher_class_id = ? AND class_teacher_is_primary = true AND class_teacher_deleted_at IS NULL",
					academyID, class.ClassID).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Class already has a primary teacher")
			}
		}

		var dup int64
		if err := tx.Model(&model.ClassTeacherModel{}).
			Where("class_teacher_academy_id = ? AND class_teacher_class_id = ? AND class_teacher_teacher_id = ? AND class_teacher_deleted_at IS NULL",
				academyID, class.ClassID, body.ClassTeacherTeacherID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Teacher already assigned to this class")
		}

		row = model.ClassTeacherModel{
			ClassTeacherAcademyID: academyID,
			ClassTeacherClassID:   class.ClassID,
			ClassTeacherTeacherID: body.ClassTeacherTeacherID,
			ClassTeacherIsPrimary: body.ClassTeacherIsPrimary,
		}
		return tx.Create(&row).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign teacher")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher assigned", dto.ToClassTeacherDTO(row))
}

// =============================
// 📄 List Class Teachers
// =============================
func (ctrl *ClassTeacherController) GetClassTeachers(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	classID := c.Params("class_id")

	var rows []model.ClassTeacherModel
	if err := ctrl.DB.
		Where("class_teacher_academy_id = ? AND class_teacher_class_id = ? AND class_teacher_deleted_at IS NULL", academyID, classID).
		Order("class_teacher_is_primary DESC, class_teacher_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class teachers")
	}

	out := make([]dto.ClassTeacherDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToClassTeacherDTO(r))
	}
	return c.JSON(out)
}

// =============================
// ❌ Unassign Teacher
// =============================
func (ctrl *ClassTeacherController) UnassignTeacher(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	res := ctrl.DB.Model(&model.ClassTeacherModel{}).
		Where("class_teacher_id = ? AND class_teacher_academy_id = ? AND class_teacher_deleted_at IS NULL", id, academyID).
		Update("class_teacher_deleted_at", gorm.Expr("now()"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to unassign teacher")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}

	return helper.Success(c, "Teacher unassigned", nil)
}
