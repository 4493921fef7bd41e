package session

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
)

// New picks the store backend named in the session config.
func New(ctx context.Context, cfg config.SessionConfig) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(cfg.TTL), nil
	case "redis":
		return NewRedisStore(ctx, cfg.Redis, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
