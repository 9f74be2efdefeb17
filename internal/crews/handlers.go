package crews

import (
	"errors"

	"powerboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles crew directory handlers.
type Handlers struct {
	Service *Service
}

// Grouped GET /api/schedules/config/crews — active crews grouped by location.
func (h *Handlers) Grouped(c *fiber.Ctx) error {
	grouped, err := h.Service.GroupedByLocation(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return response.OK(c, fiber.Map{"crews": grouped})
}

// Update PATCH /api/schedules/config/crews/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, fiber.StatusBadRequest, "Invalid crew id")
	}

	var in UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	crew, err := h.Service.Update(c.Context(), uint(id), in)
	if err != nil {
		if errors.Is(err, ErrCrewNotFound) {
			return response.Error(c, fiber.StatusNotFound, err.Error())
		}
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return response.OK(c, fiber.Map{"crew": crew})
}
