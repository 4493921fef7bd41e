package processor

import (
	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
	"github.com/nguyentantai21042004/interview-summarizer/internal/stager"
)

type implProcessor struct {
	cfg      *config.Config
	stager   stager.Stager
	gateways gateway.Factory
	logger   logger.Logger
	limiter  *semaphore
}

// New creates a new Processor instance
func New(cfg *config.Config, st stager.Stager, gateways gateway.Factory, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		stager:   st,
		gateways: gateways,
		logger:   log,
		limiter:  newSemaphore(cfg.Performance.MaxConcurrent),
	}
}
