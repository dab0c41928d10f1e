package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/auth"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/config"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/database"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/logger"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/router"
)

func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Setup(cfg.Log); err != nil {
		logger.Fatal("Failed to set up logger: %v", err)
	}
	defer logger.Sync()

	auth.Init(cfg.Auth)

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Setup(db, cfg)

	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
