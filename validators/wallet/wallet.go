package walletValidator

import (
	"finbook/middleware"
	"finbook/models"
	"finbook/service"
	"finbook/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type createWalletRequest struct {
	Name           string `json:"name" validate:"required,max=120"`
	Type           string `json:"type" validate:"required,oneof=CASH BANK E_WALLET SAVINGS"`
	InitialBalance string `json:"initialBalance"`
}

type updateWalletRequest struct {
	Name *string `json:"name" validate:"omitempty,max=120"`
	Type *string `json:"type" validate:"omitempty,oneof=CASH BANK E_WALLET SAVINGS"`
}

// Create validates a create-wallet request
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(createWalletRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		initialBalance := decimal.Zero
		if reqData.InitialBalance != "" {
			parsed, err := decimal.NewFromString(reqData.InitialBalance)
			if err != nil || parsed.IsNegative() {
				errors["initialBalance"] = "Initial balance must be a non-negative decimal number!"
			} else {
				initialBalance = parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := service.CreateWalletInput{
			Name:           reqData.Name,
			Type:           models.WalletType(reqData.Type),
			InitialBalance: initialBalance,
		}

		c.Locals("validatedCreateWallet", &input)
		return c.Next()
	}
}

// Update validates a partial wallet update
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(updateWalletRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := service.UpdateWalletInput{
			Name: reqData.Name,
		}
		if reqData.Type != nil {
			walletType := models.WalletType(*reqData.Type)
			input.Type = &walletType
		}

		c.Locals("validatedUpdateWallet", &input)
		return c.Next()
	}
}
