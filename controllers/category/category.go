package categoryController

import (
	"finbook/middleware"
	"finbook/models"
	"finbook/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryController struct {
	categories *service.CategoryService
}

func NewCategoryController(categories *service.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// List returns the user's categories, optionally filtered by ?type=
func (ctrl *CategoryController) List(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	categoryType := models.TransactionType(c.Query("type"))
	if categoryType != "" && !categoryType.Valid() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category type!", nil)
	}

	categories, err := ctrl.categories.List(userId, categoryType)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", categories)
}

// Create adds a custom category
func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	input, ok := c.Locals("validatedCreateCategory").(*service.CreateCategoryInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := ctrl.categories.Create(userId, *input)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created!", category)
}

// Update renames or retypes a category
func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	categoryId, err := c.ParamsInt("id")
	if err != nil || categoryId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	input, ok := c.Locals("validatedUpdateCategory").(*service.UpdateCategoryInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := ctrl.categories.Update(userId, uint(categoryId), *input)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated!", category)
}

// Delete removes an unused category
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	categoryId, err := c.ParamsInt("id")
	if err != nil || categoryId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	if err := ctrl.categories.Delete(userId, uint(categoryId)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted!", nil)
}
