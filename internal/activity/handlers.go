package activity

import (
	"powerboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles activity-log handlers.
type Handlers struct {
	Service *Service
}

// Recent GET /api/schedules/activity/log?limit=
func (h *Handlers) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	logs, err := h.Service.Recent(c.Context(), limit)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return response.OK(c, fiber.Map{"logs": logs})
}
