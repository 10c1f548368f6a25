package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

type recordingService struct {
	mu     sync.Mutex
	events []domain.AuthEvent
	done   chan struct{}
}

func (s *recordingService) Process(_ context.Context, event domain.AuthEvent) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	select {
	case s.done <- struct{}{}:
	default:
	}
	return nil
}

func TestDispatcher_ProcessesEnqueuedEvent(t *testing.T) {
	svc := &recordingService{done: make(chan struct{}, 1)}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{
		Type:      domain.AuthEventLogin,
		Subject:   "alice@example.com",
		Timestamp: time.Now().UTC(),
	})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("event was not processed")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.events) != 1 || svc.events[0].Subject != "alice@example.com" {
		t.Fatalf("unexpected events: %+v", svc.events)
	}
}

func TestDispatcher_SameSubjectSameShard(t *testing.T) {
	d := NewDispatcher(4, &recordingService{done: make(chan struct{}, 1)}, zerolog.Nop())

	first := d.shardIndex("alice@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice@example.com"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}
