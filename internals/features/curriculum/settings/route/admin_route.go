package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingscontroller "academylms_backend/internals/features/curriculum/settings/controller"
)

func CurriculumSettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := settingscontroller.NewCurriculumSettingsController(db)
	settings := admin.Group("/curriculum-settings")
	settings.Get("/", ctrl.GetSettings)
	settings.Put("/", ctrl.UpsertSettings)
}
