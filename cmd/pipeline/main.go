package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
	"github.com/nguyentantai21042004/interview-summarizer/internal/processor"
	"github.com/nguyentantai21042004/interview-summarizer/internal/stager"
	"github.com/nguyentantai21042004/interview-summarizer/internal/watcher"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadOrDefault("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Interview Summarizer (drop folder)")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Analyses: %d", cfg.Performance.MaxConcurrent)

	// Drop-folder mode has no per-request key.
	if _, err := cfg.APIKey(""); err != nil {
		log.Error(ctx, "Set GEMINI_API_KEY or gemini.api_key: %v", err)
		os.Exit(1)
	}

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	st := stager.New(cfg.Paths.Temp, log)
	proc := processor.New(cfg, st, gateway.NewGeminiFactory(cfg.Gemini.Model, log), log)

	w, err := watcher.New(watcher.Options{
		InputDir:      cfg.Paths.Input,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	}, proc.ProcessFile, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Drop folder is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Archived: %s", cfg.Paths.Archived)
	log.Info(ctx, "Model: %s, language: %s", cfg.Gemini.Model, cfg.Analysis.DefaultLanguage)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	// Start returns only after in-flight analyses have released their staged files.
	<-done

	log.Info(ctx, "Drop folder stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
