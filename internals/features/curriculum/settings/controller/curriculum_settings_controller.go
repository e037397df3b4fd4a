package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academylms_backend/internals/features/curriculum/settings/dto"
	"academylms_backend/internals/features/curriculum/settings/model"
	helper "academylms_backend/internals/helpers"
)

type CurriculumSettingsController struct {
	DB *gorm.DB
}

func NewCurriculumSettingsController(db *gorm.DB) *CurriculumSettingsController {
	return &CurriculumSettingsController{DB: db}
}

var validate = validator.New()

const (
	defaultMaxDepth   = 4
	defaultLevel1Name = "Program"
	defaultLevel2Name = "SubProgram"
	defaultLevel3Name = "Level"
	defaultLevel4Name = "Unit"
)

// =============================
// 🔍 Get Settings (defaults when no row exists)
// =============================
func (ctrl *CurriculumSettingsController) GetSettings(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var settings model.CurriculumSettingsModel
	dbErr := ctrl.DB.
		Where("curriculum_settings_academy_id = ? AND curriculum_settings_deleted_at IS NULL", academyID).
		First(&settings).Error
	if dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			// academy never configured its hierarchy -> implicit defaults
			return c.JSON(dto.CurriculumSettingsDTO{
				CurriculumSettingsAcademyID:  academyID.String(),
				CurriculumSettingsMaxDepth:   defaultMaxDepth,
				CurriculumSettingsLevel1Name: defaultLevel1Name,
				CurriculumSettingsLevel2Name: defaultLevel2Name,
				CurriculumSettingsLevel3Name: defaultLevel3Name,
				CurriculumSettingsLevel4Name: defaultLevel4Name,
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch curriculum settings")
	}

	return c.JSON(dto.ToCurriculumSettingsDTO(settings))
}

// =============================
// ✏️ Upsert Settings (one live row per academy)
// =============================
func (ctrl *CurriculumSettingsController) UpsertSettings(c *fiber.Ctx) error {
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpsertCurriculumSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var out model.CurriculumSettingsModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var settings model.CurriculumSettingsModel
		findErr := tx.
			Where("curriculum_settings_academy_id = ? AND curriculum_settings_deleted_at IS NULL", academyID).
			First(&settings).Error

		switch {
		case findErr == nil:
			updates := map[string]any{}
			if body.CurriculumSettingsMaxDepth != nil {
				updates["curriculum_settings_max_depth"] = *body.CurriculumSettingsMaxDepth
			}
			if body.CurriculumSettingsLevel1Name != nil {
				updates["curriculum_settings_level1_name"] = *body.CurriculumSettingsLevel1Name
			}
			if body.CurriculumSettingsLevel2Name != nil {
				updates["curriculum_settings_level2_name"] = *body.CurriculumSettingsLevel2Name
			}
			if body.CurriculumSettingsLevel3Name != nil {
				updates["curriculum_settings_level3_name"] = *body.CurriculumSettingsLevel3Name
			}
			if body.CurriculumSettingsLevel4Name != nil {
				updates["curriculum_settings_level4_name"] = *body.CurriculumSettingsLevel4Name
			}
			now := time.Now()
			updates["curriculum_settings_updated_at"] = &now
			if err := tx.Model(&settings).Updates(updates).Error; err != nil {
				return err
			}
			out = settings
			return nil

		case errors.Is(findErr, gorm.ErrRecordNotFound):
			settings = model.CurriculumSettingsModel{
				CurriculumSettingsAcademyID:  academyID,
				CurriculumSettingsMaxDepth:   defaultMaxDepth,
				CurriculumSettingsLevel1Name: defaultLevel1Name,
				CurriculumSettingsLevel2Name: defaultLevel2Name,
				CurriculumSettingsLevel3Name: defaultLevel3Name,
				CurriculumSettingsLevel4Name: defaultLevel4Name,
			}
			if body.CurriculumSettingsMaxDepth != nil {
				settings.CurriculumSettingsMaxDepth = *body.CurriculumSettingsMaxDepth
			}
			if body.CurriculumSettingsLevel1Name != nil {
				settings.CurriculumSettingsLevel1Name = *body.CurriculumSettingsLevel1Name
			}
			if body.CurriculumSettingsLevel2Name != nil {
				settings.CurriculumSettingsLevel2Name = *body.CurriculumSettingsLevel2Name
			}
			if body.CurriculumSettingsLevel3Name != nil {
				settings.CurriculumSettingsLevel3Name = *body.CurriculumSettingsLevel3Name
			}
			if body.CurriculumSettingsLevel4Name != nil {
				settings.CurriculumSettingsLevel4Name = *body.CurriculumSettingsLevel4Name
			}
			if err := tx.Create(&settings).Error; err != nil {
				return err
			}
			out = settings
			return nil

		default:
			return findErr
		}
	})
	if txErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save curriculum settings")
	}

	return helper.Success(c, "Curriculum settings saved", dto.ToCurriculumSettingsDTO(out))
}
