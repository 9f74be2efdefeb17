package app

import (
	"powerboard-backend/internal/activity"
	"powerboard-backend/internal/config"
	"powerboard-backend/internal/crews"
	"powerboard-backend/internal/database"
	"powerboard-backend/internal/health"
	"powerboard-backend/internal/hubspot"
	"powerboard-backend/internal/middleware"
	"powerboard-backend/internal/planner"
	"powerboard-backend/internal/schedules"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. Returns the DB and Redis handles so entrypoints can verify
// connections at startup.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	// Session is optional: without Redis every write is attributed to "anonymous".
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		sessionHandler, client, err := middleware.Session(middleware.SessionConfig{
			Secret:            cfg.SessionSecret,
			RedisURL:          cfg.RedisURL,
			AllowCrossSiteDev: cfg.AllowCrossSiteDev,
			IsProduction:      cfg.Env == "production",
		})
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = client
		app.Use(sessionHandler)
	}

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, nil, err
	}
	if err := database.SeedCrews(db); err != nil {
		return nil, nil, nil, err
	}

	// Services
	projectSource := &hubspot.HTTPClient{
		AccessToken: cfg.HubspotAccessToken,
		PortalID:    cfg.HubspotPortalID,
	}
	scheduleService := &schedules.Service{DB: db}
	crewService := &crews.Service{DB: db}
	activityService := &activity.Service{DB: db}
	plannerService := &planner.Service{
		Projects:  projectSource,
		Schedules: scheduleService,
		Crews:     crewService,
		Activity:  activityService,
	}

	// Health
	healthHandlers := &health.Handlers{
		DB:                db,
		Rdb:               rdb,
		HubspotConfigured: cfg.HubspotAccessToken != "",
	}
	app.Get("/api/health", healthHandlers.Check)

	// Project source (HubSpot)
	hubspotHandlers := &hubspot.Handlers{Client: projectSource}
	hubspotGroup := app.Group("/api/hubspot")
	hubspotGroup.Get("/projects", hubspotHandlers.GetProjects)
	hubspotGroup.Get("/projects/:id", hubspotHandlers.GetProject)
	hubspotGroup.Patch("/projects/:id/schedule", hubspotHandlers.UpdateSchedule)
	hubspotGroup.Get("/test", hubspotHandlers.Test)

	// Schedules + planner. Static paths registered before the :projectId params.
	scheduleHandlers := &schedules.Handlers{Service: scheduleService, Activity: activityService}
	crewHandlers := &crews.Handlers{Service: crewService}
	activityHandlers := &activity.Handlers{Service: activityService}
	plannerHandlers := &planner.Handlers{Service: plannerService}

	schedulesGroup := app.Group("/api/schedules")
	schedulesGroup.Get("/", scheduleHandlers.GetAll)
	schedulesGroup.Get("/conflicts", plannerHandlers.Conflicts)
	schedulesGroup.Get("/export.csv", plannerHandlers.ExportCSV)
	schedulesGroup.Get("/config/crews", crewHandlers.Grouped)
	schedulesGroup.Patch("/config/crews/:id", crewHandlers.Update)
	schedulesGroup.Get("/activity/log", activityHandlers.Recent)
	schedulesGroup.Post("/", scheduleHandlers.Upsert)
	schedulesGroup.Post("/bulk", scheduleHandlers.Bulk)
	schedulesGroup.Post("/auto-optimize", plannerHandlers.AutoOptimize)
	schedulesGroup.Get("/:projectId", scheduleHandlers.GetByProject)
	schedulesGroup.Delete("/:projectId", scheduleHandlers.Delete)

	return app, db, rdb, nil
}
