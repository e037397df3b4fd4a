package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/academies/academies/dto"
	"academylms_backend/internals/features/academies/academies/model"
	helper "academylms_backend/internals/helpers"
)

type AcademyController struct {
	DB *gorm.DB
}

func NewAcademyController(db *gorm.DB) *AcademyController {
	return &AcademyController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Academy (owner only)
// =============================
func (ctrl *AcademyController) CreateAcademy(c *fiber.Ctx) error {
	var body dto.CreateAcademyRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "academies",
		SlugColumn:       "academy_slug",
		SoftDeleteColumn: "academy_deleted_at",
		DefaultBase:      "academy",
	}, body.AcademyName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	academy := model.AcademyModel{
		AcademyName:         body.AcademyName,
		AcademySlug:         slug,
		AcademyContactEmail: body.AcademyContactEmail,
		AcademyContactPhone: body.AcademyContactPhone,
		AcademyAddress:      body.AcademyAddress,
		AcademyLogoURL:      body.AcademyLogoURL,
		AcademyIsActive:     true,
	}

	if err := ctrl.DB.Create(&academy).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create academy")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Academy created", dto.ToAcademyDTO(academy))
}

// =============================
// 📄 List Academies
// =============================
func (ctrl *AcademyController) GetAllAcademies(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	order, err := p.SafeOrderExpr(map[string]string{
		"created_at": "academy_created_at",
		"name":       "academy_name",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	base := ctrl.DB.Model(&model.AcademyModel{}).
		Where("academy_deleted_at IS NULL")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count academies")
	}

	var rows []model.AcademyModel
	if err := base.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch academies")
	}

	out := make([]dto.AcademyDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToAcademyDTO(r))
	}

	return c.JSON(fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Academy By ID or Slug
// =============================
func (ctrl *AcademyController) GetAcademyByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var academy model.AcademyModel

	if err := ctrl.DB.
		Where("academy_deleted_at IS NULL").
		First(&academy, "academy_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academy not found")
	}

	return c.JSON(dto.ToAcademyDTO(academy))
}

func (ctrl *AcademyController) GetAcademyBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var academy model.AcademyModel

	if err := ctrl.DB.
		Where("academy_deleted_at IS NULL").
		First(&academy, "lower(academy_slug) = lower(?)", slug).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academy not found")
	}

	return c.JSON(dto.ToAcademyDTO(academy))
}

// =============================
// ✏️ Update Academy
// =============================
func (ctrl *AcademyController) UpdateAcademy(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateAcademyRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var academy model.AcademyModel
	if err := ctrl.DB.
		Where("academy_deleted_at IS NULL").
		First(&academy, "academy_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academy not found")
	}

	updates := map[string]any{}
	if body.AcademyName != nil {
		updates["academy_name"] = *body.AcademyName
	}
	if body.AcademyContactEmail != nil {
		updates["academy_contact_email"] = *body.AcademyContactEmail
	}
	if body.AcademyContactPhone != nil {
		updates["academy_contact_phone"] = *body.AcademyContactPhone
	}
	if body.AcademyAddress != nil {
		updates["academy_address"] = *body.AcademyAddress
	}
	if body.AcademyLogoURL != nil {
		updates["academy_logo_url"] = *body.AcademyLogoURL
	}
	if body.AcademyIsActive != nil {
		updates["academy_is_active"] = *body.AcademyIsActive
	}
	now := time.Now()
	updates["academy_updated_at"] = &now

	if err := ctrl.DB.Model(&academy).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update academy")
	}

	return helper.Success(c, "Academy updated", dto.ToAcademyDTO(academy))
}

// =============================
// ❌ Soft-delete Academy
// =============================
func (ctrl *AcademyController) DeleteAcademy(c *fiber.Ctx) error {
	id := c.Params("id")

	now := time.Now()
	res := ctrl.DB.Model(&model.AcademyModel{}).
		Where("academy_id = ? AND academy_deleted_at IS NULL", id).
		Updates(map[string]any{
			"academy_deleted_at": &now,
			"academy_is_active":  false,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete academy")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Academy not found")
	}

	return helper.Success(c, "Academy deleted", nil)
}
