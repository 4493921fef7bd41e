package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/interview-summarizer/internal/api"
	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
	"github.com/nguyentantai21042004/interview-summarizer/internal/processor"
	"github.com/nguyentantai21042004/interview-summarizer/internal/session"
	"github.com/nguyentantai21042004/interview-summarizer/internal/stager"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "Interview Summarizer starting (model %s, session backend %s)", cfg.Gemini.Model, cfg.Session.Backend)
	if cfg.Gemini.APIKey == "" {
		log.Warn(ctx, "No server-side Gemini API key; requests must supply one")
	}

	store, err := session.New(ctx, cfg.Session)
	if err != nil {
		log.Error(ctx, "Failed to open session store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	st := stager.New(cfg.Paths.Temp, log)
	proc := processor.New(cfg, st, gateway.NewGeminiFactory(cfg.Gemini.Model, log), log)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = 32 << 20
	handler := api.NewHandler(cfg, proc, store, log)
	handler.RegisterRoutes(router)

	// Request contexts derive from baseCtx so shutdown can abort running analyses.
	baseCtx, cancelBase := context.WithCancel(ctx)
	defer cancelBase()

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Listening on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn(ctx, "Graceful shutdown timed out, canceling running analyses: %v", err)
	}
	cancelBase()

	drainCtx, cancelDrain := context.WithTimeout(ctx, 30*time.Second)
	defer cancelDrain()
	if err := handler.Drain(drainCtx); err != nil {
		log.Error(ctx, "Analyses still running at exit: %v", err)
	}
	log.Info(ctx, "Server stopped")
}
