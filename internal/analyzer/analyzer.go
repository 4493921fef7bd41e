package analyzer

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

// Analyze uploads the file at path and runs the transcript, summary and mind
// map prompts in that order. Any failure aborts the run; no partial result is returned.
func (a *implAnalyzer) Analyze(ctx context.Context, path, mimeType string, lang models.Language) (models.Result, error) {
	startTime := time.Now()

	file, err := a.uploadAndWait(ctx, path, mimeType)
	if err != nil {
		return models.Result{}, err
	}

	prompts := PromptsFor(lang)

	a.logger.Info(ctx, "Generating transcript...")
	transcript, err := a.generate(ctx, file, prompts, StepTranscript)
	if err != nil {
		return models.Result{}, err
	}

	a.logger.Info(ctx, "Generating summary...")
	summary, err := a.generate(ctx, file, prompts, StepSummary)
	if err != nil {
		return models.Result{}, err
	}

	a.logger.Info(ctx, "Generating mind map...")
	mindMap, err := a.generate(ctx, file, prompts, StepMindMap)
	if err != nil {
		return models.Result{}, err
	}

	a.logger.Info(ctx, "Analysis completed in %s", time.Since(startTime))
	return models.Result{
		Transcript: transcript,
		Summary:    summary,
		MindMap:    ExtractMindMap(mindMap),
	}, nil
}

func (a *implAnalyzer) generate(ctx context.Context, file gateway.Handle, prompts Prompts, step Step) (string, error) {
	text, err := a.gateway.Generate(ctx, file, prompts.Instruction, prompts.For(step))
	if err != nil {
		a.logger.Error(ctx, "Failed to generate %s: %v", step, err)
		return "", &GenerationError{Step: step, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &GenerationError{Step: step, Err: gateway.ErrEmptyResponse}
	}
	return text, nil
}

