package stager

import (
	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
)

type implStager struct {
	dir    string
	logger logger.Logger
}

// New creates a Stager that places files under dir (the system temp dir when empty).
func New(dir string, log logger.Logger) Stager {
	return &implStager{
		dir:    dir,
		logger: log,
	}
}
