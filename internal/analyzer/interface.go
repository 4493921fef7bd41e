package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

// Analyzer uploads a staged file to the gateway and runs the three analysis prompts.
type Analyzer interface {
	Analyze(ctx context.Context, path, mimeType string, lang models.Language) (models.Result, error)
}
