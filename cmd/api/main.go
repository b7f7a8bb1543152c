package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/socialape/backend/internal/config"
	"github.com/socialape/backend/internal/logger"
	"github.com/socialape/backend/internal/server"
)

func main() {
	config.Init()

	logger.Init(config.AppConfig.LogLevel)
	defer logger.Sync()

	srv, err := server.New(config.AppConfig)
	if err != nil {
		logger.Log.Fatal("startup failed", zap.Error(err))
	}
	defer srv.Close()

	// Reaction worker; stops when the shutdown context is cancelled.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.RunTriggers(ctx)

	httpServer := srv.HTTPServer()
	go func() {
		logger.Log.Info("server starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Log.Info("server stopped")
}
