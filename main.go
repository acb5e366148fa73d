package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/budgify/backend/internal/infra/logger"
	"github.com/budgify/backend/internal/setup"
	"github.com/budgify/backend/internal/setup/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env, cfg.Log.Level)
	defer log.Sync()

	handler, err := setup.Server(cfg, log)
	if err != nil {
		log.Fatal("failed to set up server", zap.Error(err))
	}

	sm := http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      handler,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("server is running", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := sm.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("received terminate, graceful shutdown", zap.String("signal", sig.String()))

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sm.Shutdown(tc); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
