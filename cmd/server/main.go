package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"healthfit/internal/auth"
	"healthfit/internal/cache"
	"healthfit/internal/config"
	"healthfit/internal/db"
	"healthfit/internal/handler"
	"healthfit/internal/logging"
	"healthfit/internal/model"
	"healthfit/internal/repository"
	"healthfit/internal/router"
	"healthfit/internal/server"
	"healthfit/internal/service"
)

// @title HealthFit API
// @version 1.0
// @description Health and fitness tracking API with cookie-based JWT sessions.
// @BasePath /api
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
// @description Session token set by /auth/login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("database init")
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			logging.Warn().Err(err).Msg("close database")
		}
	}()

	if cfg.Database.Reset {
		logging.Warn().Msg("database.reset is set, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logging.Fatal().Err(err).Msg("reset database")
		}
	}
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			logging.Fatal().Err(err).Msg("migrate database")
		}
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	activityRepo := repository.NewRecordRepository[model.Activity](gormDB)
	nutritionRepo := repository.NewRecordRepository[model.Nutrition](gormDB)
	sleepRepo := repository.NewRecordRepository[model.Sleep](gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, auth.WithExpiry(cfg.Auth.TokenTTL))
	hasher := auth.NewPasswordHasher(0)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	profileService := service.NewProfileService(userRepo, cacheClient, cfg.Redis.ProfileTTL)
	activityService := service.NewActivityService(activityRepo, nil)
	nutritionService := service.NewNutritionService(nutritionRepo, nil)
	sleepService := service.NewSleepService(sleepRepo, nil)

	e := router.New()
	router.Register(e, cfg, jwtService, router.Handlers{
		Auth:    handler.NewAuthHandler(authService, jwtService, cfg.IsProduction()),
		Profile: handler.NewProfileHandler(profileService),
		Health:  handler.NewHealthHandler(activityService, nutritionService, sleepService),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tree := server.NewTree(logging.Slog(), cfg.Server.ShutdownTimeout)
	tree.Add(server.NewHTTPService(server.NewHTTPServer(":"+cfg.Server.Port, e), cfg.Server.ShutdownTimeout))

	logging.Info().
		Str("port", cfg.Server.Port).
		Str("environment", cfg.Server.Environment).
		Str("swagger", "/swagger/index.html").
		Msg("server starting")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("supervisor stopped")
		return
	}
	logging.Info().Msg("server stopped")
}
