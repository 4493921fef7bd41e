package gateway

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	client *genai.Client
	logger logger.Logger
	model  string
}

// NewGemini creates a Gateway backed by the Gemini Files and GenerateContent APIs.
func NewGemini(ctx context.Context, apiKey, model string, log logger.Logger) (Gateway, error) {
	g, err := newGemini(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model, log)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newGemini(ctx context.Context, cc *genai.ClientConfig, model string, log logger.Logger) (*implGemini, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implGemini{
		client: client,
		logger: log,
		model:  model,
	}, nil
}

// NewGeminiFactory returns a Factory creating Gemini gateways for the given model.
func NewGeminiFactory(model string, log logger.Logger) Factory {
	return func(ctx context.Context, apiKey string) (Gateway, error) {
		return NewGemini(ctx, apiKey, model, log)
	}
}
