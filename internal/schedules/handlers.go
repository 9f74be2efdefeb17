package schedules

import (
	"errors"

	"powerboard-backend/internal/activity"
	"powerboard-backend/internal/middleware"
	"powerboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles schedule CRUD handlers.
type Handlers struct {
	Service  *Service
	Activity *activity.Service
}

// GetAll GET /api/schedules
func (h *Handlers) GetAll(c *fiber.Ctx) error {
	recs, err := h.Service.GetAll(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return response.OK(c, fiber.Map{"schedules": recs})
}

// GetByProject GET /api/schedules/:projectId
func (h *Handlers) GetByProject(c *fiber.Ctx) error {
	rec, err := h.Service.GetByProjectID(c.Context(), c.Params("projectId"))
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			return response.Error(c, fiber.StatusNotFound, err.Error())
		}
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return response.OK(c, fiber.Map{"schedule": rec})
}

// Upsert POST /api/schedules
func (h *Handlers) Upsert(c *fiber.Ctx) error {
	var in UpsertInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	in.CreatedBy = middleware.GetUserEmail(c)

	rec, err := h.Service.Upsert(c.Context(), in)
	if err != nil {
		if errors.Is(err, ErrProjectAndDateRequired) {
			return response.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	h.Activity.Log(c.Context(), "schedule_created", &in.ProjectID, in.CreatedBy, fiber.Map{
		"start_date": in.StartDate,
		"days":       rec.Days,
		"crew":       rec.Crew,
	})

	return response.OK(c, fiber.Map{
		"message":  "Schedule saved",
		"schedule": rec,
	})
}

type bulkRequest struct {
	Schedules []UpsertInput `json:"schedules"`
}

// Bulk POST /api/schedules/bulk — batched upsert used by auto-optimize.
func (h *Handlers) Bulk(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil || req.Schedules == nil {
		return response.Error(c, fiber.StatusBadRequest, "schedules array required")
	}

	email := middleware.GetUserEmail(c)
	for i := range req.Schedules {
		req.Schedules[i].CreatedBy = email
	}

	saved, err := h.Service.BulkUpsert(c.Context(), req.Schedules)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	h.Activity.Log(c.Context(), "bulk_schedule", nil, email, fiber.Map{
		"count": saved,
	})

	return response.OK(c, fiber.Map{"saved": saved})
}

// Delete DELETE /api/schedules/:projectId
func (h *Handlers) Delete(c *fiber.Ctx) error {
	projectID := c.Params("projectId")
	deleted, err := h.Service.Delete(c.Context(), projectID)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	h.Activity.Log(c.Context(), "schedule_deleted", &projectID, middleware.GetUserEmail(c), nil)

	return response.OK(c, fiber.Map{"deleted": deleted})
}
