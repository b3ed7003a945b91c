package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bbl-admins-portal/internal/ai"
	"bbl-admins-portal/internal/auth"
	"bbl-admins-portal/internal/config"
	"bbl-admins-portal/internal/controller"
	"bbl-admins-portal/internal/repo"
	"bbl-admins-portal/internal/service"
	"bbl-admins-portal/pkg/fsclient"
	"bbl-admins-portal/pkg/http_server"
	"bbl-admins-portal/pkg/logger"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func newRepositories(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*repo.Repositories, func(), error) {
	if cfg.Store == "memory" {
		zl.Warn("using the in-memory store, all data is lost on shutdown")

		return repo.NewMemoryRepositories(), func() {}, nil
	}

	client, err := fsclient.New(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		return nil, nil, err
	}

	return repo.NewRepositories(client), func() { client.Close() }, nil
}

func newGenerator(ctx context.Context, cfg *config.Config, zl *zap.Logger) service.TextGenerator {
	if cfg.GeminiApiKey == "" {
		zl.Warn("GEMINI_API_KEY is not set, AI endpoints are disabled")

		return nil
	}

	client, err := ai.NewClient(ctx, cfg.GeminiApiKey, cfg.GeminiModel)
	if err != nil {
		zl.Error("gemini client init failed, AI endpoints are disabled", zap.Error(err))

		return nil
	}

	return client
}

func Run() {
	cfg := config.LoadConfig()

	zl, err := logger.New(cfg.LogsDirectory)
	if err != nil {
		log.Fatal("Error occurred while creating logger: ", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	zl.Info("Connecting store...", zap.String("store", cfg.Store))
	repositories, closeStore, err := newRepositories(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("store connection failed", zap.Error(err))
	}
	defer closeStore()

	if cfg.SessionSecret == "" {
		zl.Fatal("SESSION_SECRET must be set")
	}
	sessions := auth.NewSessionManager(cfg.SessionSecret)

	services := service.NewServices(service.Deps{
		Repos:     repositories,
		Hasher:    auth.NewArgon2Hasher(auth.DefaultArgon2Params),
		Notifier:  service.NewLogNotifier(zl),
		Generator: newGenerator(ctx, cfg, zl),
		Logger:    zl,
	})

	if cfg.DefaultAdminPassword != "" {
		if err := services.Admin.SeedDefaultAdmin(ctx, cfg.DefaultAdminName, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword); err != nil {
			zl.Fatal("default admin seeding failed", zap.Error(err))
		}
	}

	handler := echo.New()

	zl.Info("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, sessions)

	zl.Info("Starting server...", zap.String("address", cfg.ServerAddress))
	httpServer := http_server.New(handler, cfg.ServerAddress)

	zl.Info("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		zl.Info("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		zl.Error("server stopped", zap.Error(err))
	}

	zl.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		zl.Error("shutdown error", zap.Error(err))
	} else {
		zl.Info("Successful shutdown")
	}
}
