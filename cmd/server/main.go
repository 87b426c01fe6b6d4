package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnsarulIslam10/MediCamp-Server/internal/config"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/database"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/handlers"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/middleware"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/models"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/routes"
	"github.com/AnsarulIslam10/MediCamp-Server/internal/services"
	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.Env)
	logger.Info().Str("environment", cfg.Env).Msg("Starting MediCamp Server...")

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info().Msg("Connected to PostgreSQL")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Camp{},
		&models.Registration{},
		&models.Payment{},
		&models.Feedback{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Msg("Database migrations complete")

	cache := database.NewCache(cfg.RedisAddr, cfg.RedisPassword)

	reconciler := services.NewReconciler(db)
	charge := services.NewChargeService(services.NewStripeGateway(cfg.StripeSecretKey))
	h := handlers.New(cfg, db, cache, reconciler, charge)

	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.ErrorHandler())
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.GeneralRateLimit())

	routes.Register(r, h, cfg, db, cache)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MediCamp Server is running")
	})
	r.GET("/health", h.Health)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server exited")
}
