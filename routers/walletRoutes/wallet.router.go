package walletRoutes

import (
	walletController "finbook/controllers/wallet"
	"finbook/middleware"
	walletValidator "finbook/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App, ctrl *walletController.WalletController) {
	walletGroup := app.Group("/wallets")

	walletGroup.Post("/", walletValidator.Create(), middleware.JWTMiddleware, ctrl.Create)
	walletGroup.Get("/", middleware.JWTMiddleware, ctrl.List)
	walletGroup.Get("/:id", middleware.JWTMiddleware, ctrl.Detail)
	walletGroup.Put("/:id", walletValidator.Update(), middleware.JWTMiddleware, ctrl.Update)
	walletGroup.Delete("/:id", middleware.JWTMiddleware, ctrl.Delete)
}
