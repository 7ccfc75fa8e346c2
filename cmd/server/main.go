package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotegateway/internal/api"
	"quotegateway/internal/app"
	"quotegateway/internal/config"
	"quotegateway/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	undo, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer undo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		zap.L().Fatal("build providers failed", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			zap.L().Warn("close providers failed", zap.Error(err))
		}
	}()

	upstreams := make([]api.Upstream, 0, len(a.Upstreams))
	for _, u := range a.Upstreams {
		upstreams = append(upstreams, u)
	}

	gin.SetMode(gin.ReleaseMode)
	handler := api.NewServer(a.Service, api.Options{
		RequestTimeout: time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
		Pprof:          cfg.Server.Pprof,
		Upstreams:      upstreams,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.RequestTimeoutSec+10) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	// graceful shutdown
	<-ctx.Done()
	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Warn("shutdown failed", zap.Error(err))
	}
}
