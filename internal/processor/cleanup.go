package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
	"github.com/nguyentantai21042004/interview-summarizer/internal/report"
	"github.com/nguyentantai21042004/interview-summarizer/internal/stager"
)

// releaseStaged removes a staged file, logs warning if fails
func (p *implProcessor) releaseStaged(ctx context.Context, staged *stager.StagedFile) {
	if err := staged.Release(); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup staged file %s: %v", staged.Path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up staged file: %s", staged.Path)
	}
}

// writeArtifacts writes the four downloadable files into the output folder
func (p *implProcessor) writeArtifacts(ctx context.Context, result models.Result, stem string) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, a := range report.Artifacts(result, stem) {
		dest := filepath.Join(p.cfg.Paths.Output, a.Filename)
		if err := os.WriteFile(dest, []byte(a.Content), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", a.Filename, err)
		}
		written = append(written, dest)
	}

	p.logger.Info(ctx, "Wrote %d artifacts to %s", len(written), p.cfg.Paths.Output)
	return written, nil
}

// moveToArchived moves the analyzed source out of the drop folder
func (p *implProcessor) moveToArchived(ctx context.Context, sourcePath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(sourcePath))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", sourcePath, destPath)

	if err := os.Rename(sourcePath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
