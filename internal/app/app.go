package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/auth"
	"badum_backend/internal/config"
	"badum_backend/internal/database"
	"badum_backend/internal/email"
	"badum_backend/internal/logger"
	"badum_backend/internal/middleware"
	"badum_backend/internal/routes"
	"badum_backend/internal/services"
	"badum_backend/internal/storage"
)

// Run boots the service: config, logger, database, storage, services,
// router, then serves until SIGINT/SIGTERM.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Env)
	logger.Info("starting", "env", cfg.Env, "port", cfg.Server.Port)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store, err := newStorage(cfg)
	if err != nil {
		return err
	}

	tokens := auth.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenTTL.Std(),
		cfg.JWT.RefreshTokenTTL.Std(),
		cfg.JWT.VerifyTokenTTL.Std(),
	)
	mailer := email.NewSMTPProvider(cfg.SMTP, cfg.Server.PublicURL)

	registry := services.NewRegistry(db, store, tokens, mailer, cfg.Upload)
	router := SetupRouter(cfg, registry, tokens)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

// SetupRouter builds the gin engine with the ambient middleware chain.
func SetupRouter(cfg *config.Config, registry *services.Registry, tokens *auth.TokenManager) *gin.Engine {
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(router, registry, tokens, cfg.Upload)
	return router
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Type {
	case "s3":
		return storage.NewS3Storage(cfg.Storage)
	default:
		return storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Server.PublicURL+"/uploads")
	}
}
