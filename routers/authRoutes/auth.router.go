package authRoutes

import (
	authController "finbook/controllers/auth"
	"finbook/middleware"
	authValidator "finbook/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, ctrl.Profile)
}
