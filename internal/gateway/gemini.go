package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// ErrBlocked is returned when the model rejects the prompt.
var ErrBlocked = errors.New("prompt blocked by Gemini")

func (g *implGemini) Upload(ctx context.Context, path, mimeType string) (Handle, error) {
	g.logger.Info(ctx, "Uploading file: %s", path)

	file, err := g.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: mimeType,
	})
	if err != nil {
		return Handle{}, fmt.Errorf("upload file: %w", err)
	}

	h := toHandle(file)
	g.logger.Info(ctx, "File uploaded. URI: %s", h.URI)
	return h, nil
}

func (g *implGemini) GetFile(ctx context.Context, name string) (Handle, error) {
	file, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return Handle{}, fmt.Errorf("get file %s: %w", name, err)
	}
	return toHandle(file), nil
}

func (g *implGemini) Generate(ctx context.Context, file Handle, instruction, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(file.URI, file.MIMEType),
			genai.NewPartFromText(instruction),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		if isRateLimited(err) {
			g.logger.Warn(ctx, "Gemini rate limited the request: %v", err)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, result.PromptFeedback.BlockReason)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}

	return "", ErrEmptyResponse
}

func toHandle(f *genai.File) Handle {
	if f == nil {
		return Handle{State: StateUnspecified}
	}
	return Handle{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    toState(f.State),
	}
}

func toState(s genai.FileState) State {
	switch s {
	case genai.FileStateProcessing:
		return StateProcessing
	case genai.FileStateActive:
		return StateActive
	case genai.FileStateFailed:
		return StateFailed
	default:
		return StateUnspecified
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
