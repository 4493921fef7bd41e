package session

import (
	"context"
	"sync"
	"time"

	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
)

type memoryEntry struct {
	analysis  models.Analysis
	expiresAt time.Time
}

type memoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	analyses map[string]memoryEntry
	last     map[string]string
}

// NewMemoryStore keeps analyses in process memory. A ttl of zero never expires.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:      ttl,
		now:      time.Now,
		analyses: make(map[string]memoryEntry),
		last:     make(map[string]string),
	}
}

func (s *memoryStore) Save(ctx context.Context, sessionID string, analysis models.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}
	s.analyses[analysis.ID] = memoryEntry{analysis: analysis, expiresAt: expiresAt}
	if sessionID != "" {
		s.last[sessionID] = analysis.ID
	}
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (models.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(id)
}

func (s *memoryStore) Last(ctx context.Context, sessionID string) (models.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.last[sessionID]
	if !ok {
		return models.Analysis{}, ErrNotFound
	}
	a, err := s.get(id)
	if err != nil {
		delete(s.last, sessionID)
	}
	return a, err
}

func (s *memoryStore) Close() error {
	return nil
}

// get must be called with mu held.
func (s *memoryStore) get(id string) (models.Analysis, error) {
	entry, ok := s.analyses[id]
	if !ok {
		return models.Analysis{}, ErrNotFound
	}
	if s.expired(entry) {
		delete(s.analyses, id)
		return models.Analysis{}, ErrNotFound
	}
	return entry.analysis, nil
}

func (s *memoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)
}

// sweep drops expired analyses and dangling session pointers. Caller holds mu.
func (s *memoryStore) sweep() {
	for id, entry := range s.analyses {
		if s.expired(entry) {
			delete(s.analyses, id)
		}
	}
	for sid, id := range s.last {
		if _, ok := s.analyses[id]; !ok {
			delete(s.last, sid)
		}
	}
}
