package planner

import (
	"bytes"
	"errors"
	"fmt"

	"powerboard-backend/internal/hubspot"
	"powerboard-backend/internal/middleware"
	"powerboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles calendar read-path and optimizer handlers.
type Handlers struct {
	Service *Service
}

// Conflicts GET /api/schedules/conflicts?location=
func (h *Handlers) Conflicts(c *fiber.Ctx) error {
	conflicts, err := h.Service.Conflicts(c.Context(), c.Query("location"))
	if err != nil {
		return upstreamOrServerError(c, err)
	}
	if conflicts == nil {
		conflicts = []Conflict{}
	}
	return response.OK(c, fiber.Map{"conflicts": conflicts})
}

// AutoOptimize POST /api/schedules/auto-optimize
func (h *Handlers) AutoOptimize(c *fiber.Ctx) error {
	result, err := h.Service.AutoOptimize(c.Context(), middleware.GetUserEmail(c))
	if err != nil {
		return upstreamOrServerError(c, err)
	}
	return response.OK(c, fiber.Map{
		"saved":     result.Saved,
		"schedules": result.Schedules,
	})
}

// ExportCSV GET /api/schedules/export.csv?location=
func (h *Handlers) ExportCSV(c *fiber.Ctx) error {
	events, err := h.Service.Events(c.Context(), c.Query("location"))
	if err != nil {
		return upstreamOrServerError(c, err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, events); err != nil {
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("pb-schedule-%s.csv", h.Service.now().Format(dateLayout))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func upstreamOrServerError(c *fiber.Ctx, err error) error {
	if errors.Is(err, hubspot.ErrUpstream) || errors.Is(err, hubspot.ErrMissingToken) {
		return response.ErrorWithHint(c, fiber.StatusBadGateway, err.Error(), "Check your HUBSPOT_ACCESS_TOKEN environment variable")
	}
	return response.Error(c, fiber.StatusInternalServerError, err.Error())
}
