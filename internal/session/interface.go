package session

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

// ErrNotFound is returned when an analysis or session is unknown or expired.
var ErrNotFound = errors.New("session: not found")

// Store keeps finished analyses and remembers the last one per browser session.
type Store interface {
	// Save stores the analysis and marks it as the session's latest.
	Save(ctx context.Context, sessionID string, analysis models.Analysis) error
	// Get returns an analysis by its ID.
	Get(ctx context.Context, id string) (models.Analysis, error)
	// Last returns the most recent analysis saved for sessionID.
	Last(ctx context.Context, sessionID string) (models.Analysis, error)
	Close() error
}
