package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	nodecontroller "academylms_backend/internals/features/curriculum/nodes/controller"
)

func CurriculumNodeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := nodecontroller.NewCurriculumNodeController(db)
	nodes := admin.Group("/curriculum-nodes")
	nodes.Post("/", ctrl.CreateNode)
	nodes.Get("/", ctrl.GetAllNodes)
	nodes.Get("/tree", ctrl.GetTree)
	nodes.Put("/reorder", ctrl.ReorderNodes)
	nodes.Get("/:id", ctrl.GetNodeByID)
	nodes.Put("/:id", ctrl.UpdateNode)
	nodes.Put("/:id/parent", ctrl.ReparentNode)
	nodes.Delete("/:id", ctrl.DeleteNode)
}
