package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"currencymon/internal/adapters/cache"
	"currencymon/internal/adapters/httpclient"
	"currencymon/internal/api"
	"currencymon/internal/config"
	"currencymon/internal/handler"
	httpserver "currencymon/internal/platform/http"
	"currencymon/internal/rate"
	"currencymon/internal/store"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, seeds the store, starts the HTTP
// server and the background refresh scheduler.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store and repositories
	st := store.New()
	currencyRepo := store.NewCurrencyRepository(st)
	userRepo := store.NewUserRepository(st)

	// Snapshot cache
	snapCache, err := cache.NewSnapshotCache(appCfg.SnapshotCache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create snapshot cache")
		return err
	}
	defer snapCache.Close()

	// Rate feed client (configurable timeout)
	httpTimeout := time.Duration(appCfg.RateSource.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	feedClient := httpclient.NewCBRClient(&http.Client{Timeout: httpTimeout}, appCfg.RateSource.FeedURL)

	// Reconciliation and staleness policy
	reconciler := rate.NewReconciler(currencyRepo, feedClient, snapCache, st)
	freshness := rate.NewFreshness(st, reconciler, time.Duration(appCfg.Refresh.IntervalSeconds)*time.Second)

	// Initial seed (bounded, the feed client falls back when the fetch fails)
	seedCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err = seed(seedCtx, appCfg, reconciler, currencyRepo, userRepo); err != nil {
		logrus.WithError(err).Error("Failed to seed store")
		return err
	}
	logrus.Info("✅ Store seeded")

	// Background refresh scheduler
	if appCfg.Scheduler.Enabled {
		scheduler := rate.NewScheduler(freshness, time.Duration(appCfg.Scheduler.IntervalSeconds)*time.Second)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	// Handlers and router
	h := handler.NewHandler(currencyRepo, userRepo, reconciler)
	router := api.NewRouter(h, freshness)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
