package transactionValidator

import (
	"time"

	"finbook/middleware"
	"finbook/models"
	"finbook/service"
	"finbook/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type createTransactionRequest struct {
	WalletID        uint    `json:"walletId" validate:"required"`
	CategoryID      uint    `json:"categoryId" validate:"required"`
	Name            string  `json:"name" validate:"required,max=120"`
	Amount          string  `json:"amount" validate:"required"`
	Type            string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	TransactionDate string  `json:"transactionDate"`
	Note            *string `json:"note" validate:"omitempty,max=255"`
}

type updateTransactionRequest struct {
	WalletID        *uint   `json:"walletId"`
	CategoryID      *uint   `json:"categoryId"`
	Name            *string `json:"name" validate:"omitempty,max=120"`
	Amount          *string `json:"amount"`
	Type            *string `json:"type" validate:"omitempty,oneof=INCOME EXPENSE"`
	TransactionDate *string `json:"transactionDate"`
	Note            *string `json:"note" validate:"omitempty,max=255"`
}

// Create validates a create-transaction request
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(createTransactionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		amount, err := validators.ParseAmount(reqData.Amount)
		if err != nil && errors["amount"] == "" {
			errors["amount"] = "Amount must be a positive decimal number!"
		}

		transactionDate := time.Now()
		if reqData.TransactionDate != "" {
			parsed, err := validators.ParseDate(reqData.TransactionDate)
			if err != nil {
				errors["transactionDate"] = "Invalid date format!"
			} else {
				transactionDate = parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := service.CreateTransactionInput{
			WalletID:        reqData.WalletID,
			CategoryID:      reqData.CategoryID,
			Name:            reqData.Name,
			Amount:          amount,
			Type:            models.TransactionType(reqData.Type),
			TransactionDate: transactionDate,
			Note:            reqData.Note,
		}

		c.Locals("validatedCreateTransaction", &input)
		return c.Next()
	}
}

// Update validates a partial transaction update
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(updateTransactionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		var amount *decimal.Decimal
		if reqData.Amount != nil {
			parsed, err := validators.ParseAmount(*reqData.Amount)
			if err != nil {
				errors["amount"] = "Amount must be a positive decimal number!"
			} else {
				amount = &parsed
			}
		}

		var transactionDate *time.Time
		if reqData.TransactionDate != nil {
			parsed, err := validators.ParseDate(*reqData.TransactionDate)
			if err != nil {
				errors["transactionDate"] = "Invalid date format!"
			} else {
				transactionDate = &parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := service.UpdateTransactionInput{
			WalletID:        reqData.WalletID,
			CategoryID:      reqData.CategoryID,
			Name:            reqData.Name,
			Amount:          amount,
			TransactionDate: transactionDate,
			Note:            reqData.Note,
		}
		if reqData.Type != nil {
			txnType := models.TransactionType(*reqData.Type)
			input.Type = &txnType
		}

		c.Locals("validatedUpdateTransaction", &input)
		return c.Next()
	}
}
