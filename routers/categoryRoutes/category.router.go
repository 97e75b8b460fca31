package categoryRoutes

import (
	categoryController "finbook/controllers/category"
	"finbook/middleware"
	categoryValidator "finbook/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App, ctrl *categoryController.CategoryController) {
	categoryGroup := app.Group("/categories")

	categoryGroup.Get("/", middleware.JWTMiddleware, ctrl.List)
	categoryGroup.Post("/", categoryValidator.Create(), middleware.JWTMiddleware, ctrl.Create)
	categoryGroup.Put("/:id", categoryValidator.Update(), middleware.JWTMiddleware, ctrl.Update)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, ctrl.Delete)
}
