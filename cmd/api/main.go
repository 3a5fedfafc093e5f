package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/config"
	"github.com/firstshift/jobboard/internal/database"
	"github.com/firstshift/jobboard/internal/handlers"
	"github.com/firstshift/jobboard/internal/services"
	"github.com/firstshift/jobboard/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load environment variables (.env is optional outside development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	log := config.NewLogger(cfg.Logging)
	slog.SetDefault(log)

	// 2. Database connection + schema migration
	db, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	log.Info("database connection established")

	// 3. Core services
	fileStore := storage.NewLocalStore(cfg.Storage)
	tokens := auth.NewTokenManager(cfg.Auth)
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	appService := services.NewApplicationService(db, fileStore)
	dashService := services.NewDashboardService(db)

	// 4. Handlers & middleware
	mw := auth.NewMiddleware(tokens, db)
	googleOAuth := auth.NewGoogleOAuth(cfg.OAuth)
	if googleOAuth == nil {
		log.Info("google oauth not configured, login routes disabled")
	}

	r := handlers.NewRouter(handlers.Deps{
		Cfg:   cfg,
		Log:   log,
		Auth:  mw,
		AuthH: handlers.NewAuthHandler(userService, tokens, googleOAuth),
		JobH:  handlers.NewJobHandler(jobService),
		AppH:  handlers.NewApplicationHandler(appService),
		FileH: handlers.NewFileHandler(fileStore),
		DashH: handlers.NewDashboardHandler(dashService, jobService, cfg),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
