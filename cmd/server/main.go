package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrobooks/internal/config"
	"github.com/mamadbah2/agrobooks/internal/repository/mongodb"
	"github.com/mamadbah2/agrobooks/internal/repository/sheets"
	"github.com/mamadbah2/agrobooks/internal/scheduler"
	"github.com/mamadbah2/agrobooks/internal/server/handlers"
	"github.com/mamadbah2/agrobooks/internal/server/router"
	dashboardsvc "github.com/mamadbah2/agrobooks/internal/service/dashboard"
	platformclient "github.com/mamadbah2/agrobooks/pkg/clients/platform"
	"github.com/mamadbah2/agrobooks/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	recordSource, err := buildRecordSource(cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init record source", zap.Error(err))
	}

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	dashboardSvc := dashboardsvc.NewService(recordSource, baseLogger.Named("svc.dashboard"))
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc, cfg.Dashboard.WindowDays, baseLogger.Named("handlers.dashboard"))
	engine := router.New(dashboardHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Snapshot, dashboardSvc, mongoRepo, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildRecordSource selects between the platform REST API and the Google
// Sheets workbook depending on which one the deployment configured.
func buildRecordSource(cfg *config.Config, baseLogger *zap.Logger) (dashboardsvc.RecordSource, error) {
	if cfg.UsePlatformSource() {
		baseLogger.Info("using platform api record source", zap.String("base_url", cfg.Platform.BaseURL))
		return platformclient.NewClient(cfg.Platform), nil
	}

	baseLogger.Info("using google sheets record source")
	sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		return nil, err
	}
	return sheets.NewRecordSource(sheetsRepo, cfg.Dashboard.Occupations, baseLogger.Named("repo.sheets")), nil
}
