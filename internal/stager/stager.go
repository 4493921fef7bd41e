package stager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrStaging wraps every local failure while writing a staged file.
var ErrStaging = errors.New("stage upload")

// StagedFile is a temporary copy of an upload. Release must be called once the
// pipeline is done with it.
type StagedFile struct {
	Path string
}

// Stage writes data to a fresh temp file ending in ext.
func (s *implStager) Stage(ctx context.Context, data []byte, ext string) (*StagedFile, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create temp dir: %w", ErrStaging, err)
		}
	}

	f, err := os.CreateTemp(s.dir, "upload-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("%w: create temp file: %w", ErrStaging, err)
	}
	path := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w: write temp file: %w", ErrStaging, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: close temp file: %w", ErrStaging, err)
	}

	s.logger.Debug(ctx, "Staged %d bytes at %s", len(data), path)
	return &StagedFile{Path: path}, nil
}

// Release deletes the staged file. A file that is already gone is not an error.
func (f *StagedFile) Release() error {
	if f == nil || f.Path == "" {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove staged file: %w", err)
	}
	return nil
}
