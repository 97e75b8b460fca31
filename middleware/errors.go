package middleware

import (
	"errors"
	"log"

	"finbook/service"

	"github.com/gofiber/fiber/v2"
)

// ServiceErrorResponse maps the service error taxonomy onto HTTP responses.
// ErrNotFound deliberately covers not-owned records as well, so callers cannot
// probe whether a record id exists.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
	case errors.Is(err, service.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	case errors.Is(err, service.ErrInvalidOperation):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Operation not allowed!", nil)
	case errors.Is(err, service.ErrInconsistentState):
		log.Printf("Inconsistent state on %s %s: %v", c.Method(), c.Path(), err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
