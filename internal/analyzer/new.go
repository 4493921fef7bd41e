package analyzer

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
)

type implAnalyzer struct {
	gateway      gateway.Gateway
	logger       logger.Logger
	pollInterval time.Duration
	pollTimeout  time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

// New creates an Analyzer bound to one gateway.
func New(gw gateway.Gateway, cfg config.GeminiConfig, log logger.Logger) Analyzer {
	return &implAnalyzer{
		gateway:      gw,
		logger:       log,
		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,
		sleep:        sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
