package main

import (
	"context"
	"fmt"

	"powerboard-backend/internal/app"
	"powerboard-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load: " + err.Error())
	}
	fiberApp, db, rdb, err := app.CreateApp(cfg)
	if err != nil {
		panic("app create: " + err.Error())
	}

	// Verify connections before printing (Express-style startup logs)
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			panic("database: get DB: " + err.Error())
		}
		if err := sqlDB.Ping(); err != nil {
			panic("database connection failed: " + err.Error())
		}
		fmt.Println("Database connected")
	}
	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			panic("Redis connection failed: " + err.Error())
		}
		fmt.Println("Redis connected")
	}
	if cfg.HubspotAccessToken != "" {
		fmt.Println("HubSpot token configured")
	} else {
		fmt.Println("HubSpot token missing - /api/hubspot routes will fail")
	}
	fmt.Printf("Server running at http://localhost:%s\n", cfg.Port)
	fmt.Printf("Health check: http://localhost:%s/api/health\n", cfg.Port)
	fmt.Println("---")

	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		panic(err)
	}
}
