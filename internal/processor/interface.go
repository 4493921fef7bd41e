package processor

import (
	"context"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

// Processor runs one upload through staging, analysis and cleanup.
type Processor interface {
	// Analyze stages the asset, runs the analyzer and always releases the staged file.
	// apiKey overrides the configured Gemini key when non-empty.
	Analyze(ctx context.Context, asset models.Asset, lang models.Language, apiKey string) (models.Result, error)
	// ProcessFile analyzes a file from the drop folder and writes its artifacts.
	ProcessFile(ctx context.Context, path string) error
}
