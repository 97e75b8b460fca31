package transactionRoutes

import (
	transactionController "finbook/controllers/transaction"
	"finbook/middleware"
	transactionValidator "finbook/validators/transaction"

	"github.com/gofiber/fiber/v2"
)

func SetupTransactionRoutes(app *fiber.App, ctrl *transactionController.TransactionController) {
	transactionGroup := app.Group("/transactions")

	transactionGroup.Post("/", transactionValidator.Create(), middleware.JWTMiddleware, ctrl.Create)
	transactionGroup.Get("/", middleware.JWTMiddleware, ctrl.List)
	transactionGroup.Get("/:id", middleware.JWTMiddleware, ctrl.Detail)
	transactionGroup.Put("/:id", transactionValidator.Update(), middleware.JWTMiddleware, ctrl.Update)
	transactionGroup.Delete("/:id", middleware.JWTMiddleware, ctrl.Delete)
}
