package processor

import (
	"context"
	"sync/atomic"
)

// semaphore bounds how many analyses talk to the gateway at once.
type semaphore struct {
	ch       chan struct{}
	inFlight atomic.Int64
}

func newSemaphore(capacity int) *semaphore {
	if capacity <= 0 {
		capacity = 1
	}
	return &semaphore{
		ch: make(chan struct{}, capacity),
	}
}

// acquire blocks until a slot is free or ctx is done.
func (s *semaphore) acquire(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		s.inFlight.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) release() {
	s.inFlight.Add(-1)
	<-s.ch
}

func (s *semaphore) running() int64 {
	return s.inFlight.Load()
}
