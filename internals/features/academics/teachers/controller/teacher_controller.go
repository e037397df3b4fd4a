package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/academics/teachers/dto"
	"academylms_backend/internals/features/academics/teachers/model"
	helper "academylms_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Teacher
// =============================
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher := model.TeacherModel{
		TeacherAcademyID: academyID,
		TeacherUserID:    body.TeacherUserID,
		TeacherName:      body.TeacherName,
		TeacherEmail:     body.TeacherEmail,
		TeacherPhone:     body.TeacherPhone,
		TeacherSpecialty: body.TeacherSpecialty,
		TeacherIsActive:  true,
	}
	if body.TeacherEmploymentStatus != nil {
		teacher.TeacherEmploymentStatus = *body.TeacherEmploymentStatus
	} else {
		teacher.TeacherEmploymentStatus = "full_time"
	}

	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", dto.ToTeacherDTO(teacher))
}

// =============================
// 📄 List Teachers
// =============================
func (ctrl *TeacherController) GetAllTeachers(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderExpr(map[string]string{
		"created_at": "teacher_created_at",
		"name":       "teacher_name",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.TeacherModel{}).
		Where("teacher_academy_id = ? AND teacher_deleted_at IS NULL", academyID)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("teacher_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []model.TeacherModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	out := make([]dto.TeacherDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToTeacherDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Teacher By ID
// =============================
func (ctrl *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var teacher model.TeacherModel
	if err := ctrl.DB.
		Where("teacher_academy_id = ? AND teacher_deleted_at IS NULL", academyID).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}

	return c.JSON(dto.ToTeacherDTO(teacher))
}

// =============================
// ✏️ Update Teacher
// =============================
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.
		Where("teacher_academy_id = ? AND teacher_deleted_at IS NULL", academyID).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}

	updates := map[string]any{}
	if body.TeacherName != nil {
		updates["teacher_name"] = *body.TeacherName
	}
	if body.TeacherEmail != nil {
		updates["teacher_email"] = *body.TeacherEmail
	}
	if body.TeacherPhone != nil {
		updates["teacher_phone"] = *body.TeacherPhone
	}
	if body.TeacherSpecialty != nil {
		updates["teacher_specialty"] = *body.TeacherSpecialty
	}
	if body.TeacherEmploymentStatus != nil {
		updates["teacher_employment_status"] = *body.TeacherEmploymentStatus
	}
	if body.TeacherIsActive != nil {
		updates["teacher_is_active"] = *body.TeacherIsActive
	}
	now := time.Now()
	updates["teacher_updated_at"] = &now

	if err := ctrl.DB.Model(&teacher).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update teacher")
	}

	return helper.Success(c, "Teacher updated", dto.ToTeacherDTO(teacher))
}

// =============================
// ❌ Soft-delete Teacher
// =============================
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.TeacherModel{}).
		Where("teacher_id = ? AND teacher_academy_id = ? AND teacher_deleted_at IS NULL", id, academyID).
		Updates(map[string]any{
			"teacher_deleted_at": &now,
			"teacher_is_active":  false,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}

	return helper.Success(c, "Teacher deleted", nil)
}
