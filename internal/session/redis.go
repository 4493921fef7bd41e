package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

const (
	analysisKeyPrefix = "analysis:"
	sessionKeyPrefix  = "session:last:"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (Store, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis addr required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, analysis models.Analysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, analysisKeyPrefix+analysis.ID, payload, s.ttl)
	if sessionID != "" {
		pipe.Set(ctx, sessionKeyPrefix+sessionID, analysis.ID, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save analysis %s: %w", analysis.ID, err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (models.Analysis, error) {
	raw, err := s.client.Get(ctx, analysisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Analysis{}, ErrNotFound
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("get analysis %s: %w", id, err)
	}

	var a models.Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		return models.Analysis{}, fmt.Errorf("decode analysis %s: %w", id, err)
	}
	return a, nil
}

func (s *redisStore) Last(ctx context.Context, sessionID string) (models.Analysis, error) {
	id, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return models.Analysis{}, ErrNotFound
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	return s.Get(ctx, id)
}

func (s *redisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
