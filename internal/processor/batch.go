package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
	"github.com/nguyentantai21042004/interview-summarizer/internal/report"
)

// ProcessFile analyzes one file dropped into the input folder
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	startTime := time.Now()
	filename := filepath.Base(path)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting analysis: %s", path)
	p.logger.Info(ctx, "========================================")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	lang := models.ParseLanguage(p.cfg.Analysis.DefaultLanguage)
	result, err := p.Analyze(ctx, models.Asset{Name: filename, Data: data}, lang, "")
	if err != nil {
		return err
	}

	written, err := p.writeArtifacts(ctx, result, report.Stem(filename))
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move source file to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Analysis completed successfully!")
	for _, w := range written {
		p.logger.Info(ctx, "Output: %s", w)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}
