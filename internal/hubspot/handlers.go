package hubspot

import (
	"errors"

	"powerboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const tokenHint = "Check your HUBSPOT_ACCESS_TOKEN environment variable"

// Handlers bundles project-source handlers.
type Handlers struct {
	Client Client
}

// GetProjects GET /api/hubspot/projects?location=
func (h *Handlers) GetProjects(c *fiber.Ctx) error {
	location := c.Query("location")

	projects, total, err := h.Client.SearchProjects(c.Context(), location)
	if err != nil {
		return response.ErrorWithHint(c, fiber.StatusBadGateway, err.Error(), tokenHint)
	}

	return response.OK(c, fiber.Map{
		"total":    total,
		"projects": projects,
	})
}

// GetProject GET /api/hubspot/projects/:id
func (h *Handlers) GetProject(c *fiber.Ctx) error {
	project, err := h.Client.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrDealNotFound) {
			return response.Error(c, fiber.StatusNotFound, err.Error())
		}
		return response.ErrorWithHint(c, fiber.StatusBadGateway, err.Error(), tokenHint)
	}
	return response.OK(c, fiber.Map{"project": project})
}

type updateScheduleRequest struct {
	ScheduleDate *string `json:"scheduleDate"`
	Crew         *string `json:"crew"`
}

// UpdateSchedule PATCH /api/hubspot/projects/:id/schedule — writes the install
// date and crew back to the CRM deal.
func (h *Handlers) UpdateSchedule(c *fiber.Ctx) error {
	var req updateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.Client.UpdateProjectSchedule(c.Context(), c.Params("id"), req.ScheduleDate, req.Crew); err != nil {
		if errors.Is(err, ErrDealNotFound) {
			return response.Error(c, fiber.StatusNotFound, err.Error())
		}
		return response.ErrorWithHint(c, fiber.StatusBadGateway, err.Error(), tokenHint)
	}
	return response.OK(c, fiber.Map{"message": "Schedule updated in HubSpot"})
}

// Test GET /api/hubspot/test — verifies the CRM connection.
func (h *Handlers) Test(c *fiber.Ctx) error {
	sample, err := h.Client.Ping(c.Context())
	if err != nil {
		return response.ErrorWithHint(c, fiber.StatusBadGateway, err.Error(), tokenHint)
	}
	return response.OK(c, fiber.Map{
		"message":    "HubSpot connection successful",
		"sampleDeal": sample,
	})
}
