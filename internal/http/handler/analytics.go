package handler

import (
	"github.com/gofiber/fiber/v2"

	"textvault/internal/http/middleware"
	"textvault/internal/service"
)

// AnalyticsDashboard returns the full usage dashboard, freshly aggregated.
func AnalyticsDashboard(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dash, err := svc.Dashboard(c.UserContext(), middleware.OwnerID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dash)
	}
}

// AnalyticsSummary returns the lightweight counts-only summary.
func AnalyticsSummary(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := svc.Summary(c.UserContext(), middleware.OwnerID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(summary)
	}
}
