package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"ndastro/internal/adapters/httpapi"
	"ndastro/internal/application"
	"ndastro/internal/config"
	"ndastro/internal/infrastructure/database"
	"ndastro/internal/infrastructure/ephemeris"
	"ndastro/internal/infrastructure/i18n"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// An incomplete English catalog is a build defect; refuse to start.
	translator, err := i18n.NewTranslator(logger)
	if err != nil {
		logger.Fatal("translation catalogs failed to load", zap.Error(err))
	}
	if _, ok := translator.Normalize(cfg.DefaultLocale); !ok {
		logger.Warn("DEFAULT_LOCALE is not a supported language, serving English",
			zap.String("default_locale", cfg.DefaultLocale))
	}

	astroSvc := application.NewAstroService(ephemeris.NewProvider())
	chartSvc := application.NewChartService(database.NewChartRepository(pool), astroSvc, translator)

	server := httpapi.NewServer(cfg.HTTPAddr, logger, translator, astroSvc, chartSvc, pool)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	if err := server.Start(); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
	logger.Info("stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.IsLocal() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	return zapCfg.Build()
}
