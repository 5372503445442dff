// Package server boots the HTTP process: config, database, cache,
// middleware stack, routes, metrics endpoint.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dpramana/apotek/app/routes"
	"github.com/dpramana/apotek/config"
	"github.com/dpramana/apotek/pkg/cache"
	"github.com/dpramana/apotek/pkg/database"
	"github.com/dpramana/apotek/pkg/logger"
	"github.com/dpramana/apotek/pkg/metrics"
	"github.com/dpramana/apotek/pkg/middleware"
	"github.com/dpramana/apotek/pkg/migration"
	"github.com/dpramana/apotek/pkg/reqid"
	"github.com/dpramana/apotek/pkg/router"
)

// Start boots everything and blocks until the process receives an
// interrupt, then drains in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := migration.Run(database.DB); err != nil {
		return err
	}

	// the cache is an optimisation, not a dependency: run without it
	// when redis is down
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, running without it", "error", err)
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)
	r.HandleFunc("/metrics", metrics.Handler())
	routes.RegisterAPI(r)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("apotek listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
