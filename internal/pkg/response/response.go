package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the standardized error JSON shape.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Hint    string `json:"hint,omitempty"`
}

// OK sends 200 with {"success": true} merged with the supplied fields.
func OK(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Error sends a response with the standard error format.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Success: false, Error: message})
}

// ErrorWithHint sends an error with an operator hint (e.g. which env var to check).
func ErrorWithHint(c *fiber.Ctx, statusCode int, message, hint string) error {
	return c.Status(statusCode).JSON(ErrorBody{Success: false, Error: message, Hint: hint})
}
