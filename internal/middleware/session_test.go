package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionTest(t *testing.T) (*fiber.App, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	handler, _, err := Session(SessionConfig{RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(handler)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": GetUserEmail(c)})
	})
	return app, mr
}

// A valid session cookie resolves to the planner's email.
func TestSession_LoadsUser(t *testing.T) {
	app, mr := setupSessionTest(t)

	sessionJSON, _ := json.Marshal(map[string]interface{}{
		"user": map[string]interface{}{"email": "planner@example.com"},
	})
	require.NoError(t, mr.Set("session:abc123", string(sessionJSON)))
	mr.SetTTL("session:abc123", 24*time.Hour)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", "pb.sid=s:abc123.signature")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "planner@example.com", body["email"])
}

// Without a cookie the request runs as anonymous.
func TestSession_Anonymous(t *testing.T) {
	app, _ := setupSessionTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "anonymous", body["email"])
}
