package processor

import (
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/nguyentantai21042004/interview-summarizer/internal/analyzer"
	"github.com/nguyentantai21042004/interview-summarizer/internal/media"
	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

// Analyze orchestrates one analysis: credential check, staging, gateway pipeline, cleanup.
func (p *implProcessor) Analyze(ctx context.Context, asset models.Asset, lang models.Language, apiKey string) (models.Result, error) {
	startTime := time.Now()

	key, err := p.cfg.APIKey(apiKey)
	if err != nil {
		return models.Result{}, err
	}

	format, err := media.Lookup(asset.Name)
	if err != nil {
		return models.Result{}, err
	}
	if declared := declaredType(asset.MIMEType); declared != "" && declared != format.MIMEType {
		p.logger.Info(ctx, "Declared type %s of %s differs from extension; sending %s", declared, asset.Name, format.MIMEType)
	}

	if err := p.limiter.acquire(ctx); err != nil {
		return models.Result{}, fmt.Errorf("wait for slot: %w", err)
	}
	defer p.limiter.release()

	p.logger.Info(ctx, "Starting analysis: %s (%s, %.1f KB, language %s, %d running)",
		asset.Name, format.Kind, float64(asset.Size())/1024, lang, p.limiter.running())

	staged, err := p.stager.Stage(ctx, asset.Data, format.Ext)
	if err != nil {
		return models.Result{}, fmt.Errorf("stage %s: %w", asset.Name, err)
	}
	defer p.releaseStaged(ctx, staged)

	gw, err := p.gateways(ctx, key)
	if err != nil {
		return models.Result{}, fmt.Errorf("connect gateway: %w", err)
	}

	result, err := analyzer.New(gw, p.cfg.Gemini, p.logger).Analyze(ctx, staged.Path, format.MIMEType, lang)
	if err != nil {
		p.logger.Error(ctx, "Analysis of %s failed: %v", asset.Name, err)
		return models.Result{}, fmt.Errorf("analyze %s: %w", asset.Name, err)
	}

	p.logger.Info(ctx, "Analysis of %s completed in %s", asset.Name, time.Since(startTime))
	return result, nil
}

// declaredType returns the client-declared media type without parameters.
// Generic types carry no information and are ignored.
func declaredType(v string) string {
	mediaType, _, err := mime.ParseMediaType(v)
	if err != nil || mediaType == "application/octet-stream" {
		return ""
	}
	return mediaType
}
