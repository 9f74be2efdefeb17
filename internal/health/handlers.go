package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handlers reports service health and dependency status.
type Handlers struct {
	DB                *gorm.DB
	Rdb               *redis.Client
	HubspotConfigured bool
}

// Check GET /api/health
func (h *Handlers) Check(c *fiber.Ctx) error {
	deps := fiber.Map{
		"database": h.databaseStatus(),
		"redis":    h.redisStatus(c.Context()),
		"hubspot":  configuredStatus(h.HubspotConfigured),
	}
	return c.JSON(fiber.Map{
		"status":       "ok",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"dependencies": deps,
	})
}

func (h *Handlers) databaseStatus() string {
	if h.DB == nil {
		return "not configured"
	}
	sqlDB, err := h.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		return "disconnected"
	}
	return "connected"
}

func (h *Handlers) redisStatus(ctx context.Context) string {
	if h.Rdb == nil {
		return "not configured"
	}
	if err := h.Rdb.Ping(ctx).Err(); err != nil {
		return "disconnected"
	}
	return "connected"
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
