package walletController

import (
	"finbook/middleware"
	"finbook/service"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	wallets *service.WalletService
}

func NewWalletController(wallets *service.WalletService) *WalletController {
	return &WalletController{wallets: wallets}
}

// Create adds a new wallet for the user
func (ctrl *WalletController) Create(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	input, ok := c.Locals("validatedCreateWallet").(*service.CreateWalletInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	wallet, err := ctrl.wallets.Create(userId, *input)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Wallet created!", wallet)
}

// List returns the user's wallets with their combined balance
func (ctrl *WalletController) List(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	wallets, totalBalance, err := ctrl.wallets.List(userId)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallets fetched!", fiber.Map{
		"wallets":      wallets,
		"totalBalance": totalBalance,
	})
}

// Detail returns a single wallet
func (ctrl *WalletController) Detail(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	walletId, err := c.ParamsInt("id")
	if err != nil || walletId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid wallet id!", nil)
	}

	wallet, err := ctrl.wallets.Detail(userId, uint(walletId))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet fetched!", wallet)
}

// Update renames or retypes a wallet
func (ctrl *WalletController) Update(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	walletId, err := c.ParamsInt("id")
	if err != nil || walletId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid wallet id!", nil)
	}

	input, ok := c.Locals("validatedUpdateWallet").(*service.UpdateWalletInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	wallet, err := ctrl.wallets.Update(userId, uint(walletId), *input)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet updated!", wallet)
}

// Delete soft-deletes an empty wallet
func (ctrl *WalletController) Delete(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	walletId, err := c.ParamsInt("id")
	if err != nil || walletId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid wallet id!", nil)
	}

	if err := ctrl.wallets.Delete(userId, uint(walletId)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet deleted!", nil)
}
