package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mappingcontroller "academylms_backend/internals/features/curriculum/mappings/controller"
)

func CurriculumExamMappingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := mappingcontroller.NewCurriculumExamMappingController(db)
	mappings := admin.Group("/curriculum-exam-mappings")
	mappings.Post("/", ctrl.CreateMapping)
	mappings.Get("/", ctrl.GetAllMappings)
	mappings.Put("/:id", ctrl.UpdateMapping)
	mappings.Delete("/:id", ctrl.DeleteMapping)
}
