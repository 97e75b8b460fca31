package transactionController

import (
	"finbook/middleware"
	"finbook/models"
	"finbook/repository"
	"finbook/service"
	"finbook/validators"

	"github.com/gofiber/fiber/v2"
)

type TransactionController struct {
	txns *service.TransactionService
}

func NewTransactionController(txns *service.TransactionService) *TransactionController {
	return &TransactionController{txns: txns}
}

// Create records a transaction and applies it to the wallet balance
func (ctrl *TransactionController) Create(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	input, ok := c.Locals("validatedCreateTransaction").(*service.CreateTransactionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	txn, err := ctrl.txns.Create(userId, *input)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Transaction recorded!", txn)
}

// List returns the user's transactions with filters and pagination
func (ctrl *TransactionController) List(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	filter := repository.TransactionFilter{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		WalletID:   uint(c.QueryInt("walletId", 0)),
		CategoryID: uint(c.QueryInt("categoryId", 0)),
		Search:     c.Query("search"),
	}

	txnType := models.TransactionType(c.Query("type"))
	if txnType != "" {
		if !txnType.Valid() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction type!", nil)
		}
		filter.Type = txnType
	}

	if startStr := c.Query("startDate"); startStr != "" {
		start, err := validators.ParseDate(startStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid startDate format!", nil)
		}
		filter.StartDate = &start
	}
	if endStr := c.Query("endDate"); endStr != "" {
		end, err := validators.ParseDate(endStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid endDate format!", nil)
		}
		// end date is inclusive for callers
		end = end.AddDate(0, 0, 1)
		filter.EndDate = &end
	}

	txns, pagination, err := ctrl.txns.List(userId, filter)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": txns,
		"pagination":   pagination,
	})
}

// Detail returns a single transaction
func (ctrl *TransactionController) Detail(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	txnId, err := c.ParamsInt("id")
	if err != nil || txnId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	txn, err := ctrl.txns.Detail(userId, uint(txnId))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction fetched!", txn)
}

// Update edits a transaction; the wallet balance is rebalanced atomically
func (ctrl *TransactionController) Update(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	txnId, err := c.ParamsInt("id")
	if err != nil || txnId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	input, ok := c.Locals("validatedUpdateTransaction").(*service.UpdateTransactionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	txn, err := ctrl.txns.Update(userId, uint(txnId), *input)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction updated!", txn)
}

// Delete soft-deletes a transaction and reverses its balance effect
func (ctrl *TransactionController) Delete(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	txnId, err := c.ParamsInt("id")
	if err != nil || txnId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	if err := ctrl.txns.Delete(userId, uint(txnId)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction deleted!", nil)
}
