package dashboardRoutes

import (
	dashboardController "finbook/controllers/dashboard"
	"finbook/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, ctrl *dashboardController.DashboardController) {
	dashboardGroup := app.Group("/dashboard")

	dashboardGroup.Get("/", middleware.JWTMiddleware, ctrl.Summary)
}
