package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/promptn8/promptn8-server/config"
	"github.com/promptn8/promptn8-server/internal/database"
	"github.com/promptn8/promptn8-server/internal/handlers"
	"github.com/promptn8/promptn8-server/internal/middleware"
	"github.com/promptn8/promptn8-server/internal/services/ai"
	"github.com/promptn8/promptn8-server/internal/services/auth"
	"github.com/promptn8/promptn8-server/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Info().Str("environment", cfg.Environment).Int("port", cfg.ServerPort).Msg("promptn8 server starting")

	// Database
	if err := database.InitDB(cfg.DBPath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	if err := database.ExecSchema(cfg.SchemaPath); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Repositories
	userRepo := database.NewUserRepository(database.DB)
	promptRepo := database.NewPromptRepository(database.DB)
	presetRepo := database.NewPresetRepository(database.DB)

	// Services
	authService := auth.NewService(userRepo, cfg.SessionTTL, cfg.OTPTTL)
	aiService, err := ai.NewService(context.Background(), ai.Config{
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		GoogleAPIKey:     cfg.GoogleAPIKey,
		OpenAIImageModel: cfg.OpenAIImageModel,
		GeminiImageModel: cfg.GeminiImageModel,
		ReviewModel:      cfg.ReviewModel,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize providers")
	}

	// Handlers
	catalogHandler := handlers.NewCatalogHandler()
	authHandler := handlers.NewAuthHandler(authService, userRepo)
	promptHandler := handlers.NewPromptHandler(promptRepo)
	presetHandler := handlers.NewPresetHandler(presetRepo)
	proxyHandler := handlers.NewProxyHandler(aiService)

	// Background cleanup of expired sessions and OTP codes
	cleanupWorker := worker.NewWorker(userRepo, cfg.CleanupInterval)
	go cleanupWorker.Start()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.ExtraOrigins))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.BearerAuth(authService))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "promptn8-server"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", catalogHandler.GetCatalog)
		v1.POST("/compose", catalogHandler.Compose)
		v1.POST("/parse", catalogHandler.Parse)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/request-otp", authHandler.RequestOTP)
			authGroup.POST("/verify-otp", authHandler.VerifyOTP)
			authGroup.POST("/logout", authHandler.Logout)
		}
		v1.GET("/me", authHandler.Me)

		prompts := v1.Group("/prompts", middleware.RequireAuth())
		{
			prompts.GET("", promptHandler.GetAll)
			prompts.POST("", promptHandler.Create)
			prompts.PUT("/:id", promptHandler.Update)
			prompts.PATCH("/:id/image", promptHandler.UpdateImage)
			prompts.DELETE("/:id", promptHandler.Delete)
		}

		presets := v1.Group("/scene-presets", middleware.RequireAuth())
		{
			presets.GET("", presetHandler.GetAll)
			presets.POST("", presetHandler.Create)
			presets.PATCH("/:id", presetHandler.Update)
			presets.DELETE("/:id", presetHandler.Delete)
		}

		proxies := v1.Group("", middleware.RateLimiter(cfg.ProxyRateLimit, cfg.ProxyRateBurst))
		{
			proxies.POST("/generate-image", proxyHandler.GenerateImage)
			proxies.POST("/review-prompt", proxyHandler.ReviewPrompt)
		}
	}

	go func() {
		if err := router.Run(cfg.Addr()); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("addr", cfg.Addr()).Msg("server listening")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	cleanupWorker.Stop()
	database.Close()
	log.Info().Msg("shutdown complete")
}
