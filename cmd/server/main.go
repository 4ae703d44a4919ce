package main

import (
	"fmt"
	"log"

	"illyrian-api/internal/api/routes"
	"illyrian-api/internal/config"
	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Seed default roles, languages and the first admin account
	authService := services.NewAuthService(cfg)
	if err := authService.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed defaults: %v", err)
	}

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.New()
	r.Use(gin.Logger())

	// Setup routes
	routes.SetupRoutes(r, cfg)

	// Run server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting Illyrian API server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
