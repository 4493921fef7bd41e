package session

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) Store {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis-backed session tests")
	}
	db := 0
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}

	s, err := NewRedisStore(context.Background(), config.RedisConfig{Addr: addr, DB: db}, ttl)
	if err != nil {
		t.Fatalf("redis store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisStore_SaveGetLast(t *testing.T) {
	s := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	sessionID := uuid.NewString()
	first, second := sampleAnalysis(uuid.NewString()), sampleAnalysis(uuid.NewString())

	if err := s.Save(ctx, sessionID, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Save(ctx, sessionID, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Result != first.Result {
		t.Errorf("Get().Result = %+v, want %+v", got.Result, first.Result)
	}

	last, err := s.Last(ctx, sessionID)
	if err != nil {
		t.Fatalf("Last() error = %v", err)
	}
	if last.ID != second.ID {
		t.Errorf("Last().ID = %q, want %q", last.ID, second.ID)
	}

	if _, err := s.Get(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() unknown id error = %v, want ErrNotFound", err)
	}
}

func TestRedisStore_Expiry(t *testing.T) {
	s := newTestRedisStore(t, time.Second)
	ctx := context.Background()

	a := sampleAnalysis(uuid.NewString())
	if err := s.Save(ctx, "", a); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	time.Sleep(1500 * time.Millisecond)
	if _, err := s.Get(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after ttl error = %v, want ErrNotFound", err)
	}
}
