package dashboardController

import (
	"time"

	"finbook/middleware"
	"finbook/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	dashboard *service.DashboardService
}

func NewDashboardController(dashboard *service.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// Summary returns the month's aggregation: totals, category breakdown, wallet
// balance and recent transactions. ?month=YYYY-MM, defaults to the current
// month.
func (ctrl *DashboardController) Summary(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	ref := time.Now()
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid month format, expected YYYY-MM!", nil)
		}
		ref = parsed
	}

	summary, err := ctrl.dashboard.Summary(userId, ref)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", summary)
}
