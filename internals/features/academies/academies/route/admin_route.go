package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academycontroller "academylms_backend/internals/features/academies/academies/controller"
)

func AcademyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := academycontroller.NewAcademyController(db)

	academies := admin.Group("/academies")
	academies.Post("/", ctrl.CreateAcademy)
	academies.Get("/", ctrl.GetAllAcademies)
	academies.Get("/:id", ctrl.GetAcademyByID)
	academies.Put("/:id", ctrl.UpdateAcademy)
	academies.Delete("/:id", ctrl.DeleteAcademy)
}

func AcademyPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := academycontroller.NewAcademyController(db)

	academies := public.Group("/academies")
	academies.Get("/slug/:slug", ctrl.GetAcademyBySlug)
}
