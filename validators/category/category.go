package categoryValidator

import (
	"finbook/middleware"
	"finbook/models"
	"finbook/service"
	"finbook/validators"

	"github.com/gofiber/fiber/v2"
)

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,max=64"`
	Type string `json:"type" validate:"required,oneof=INCOME EXPENSE"`
}

type updateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,max=64"`
	Type *string `json:"type" validate:"omitempty,oneof=INCOME EXPENSE"`
}

// Create validates a create-category request
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(createCategoryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := service.CreateCategoryInput{
			Name: reqData.Name,
			Type: models.TransactionType(reqData.Type),
		}

		c.Locals("validatedCreateCategory", &input)
		return c.Next()
	}
}

// Update validates a partial category update
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(updateCategoryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := service.UpdateCategoryInput{
			Name: reqData.Name,
		}
		if reqData.Type != nil {
			categoryType := models.TransactionType(*reqData.Type)
			input.Type = &categoryType
		}

		c.Locals("validatedUpdateCategory", &input)
		return c.Next()
	}
}
