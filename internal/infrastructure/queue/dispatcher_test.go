package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/core/domain"
)

type collectingAuditService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func newCollectingAuditService(want int) *collectingAuditService {
	return &collectingAuditService{done: make(chan struct{}), want: want}
}

func (s *collectingAuditService) Process(ctx context.Context, e domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *collectingAuditService) wait(t *testing.T) []domain.AuditEvent {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditEvent(nil), s.events...)
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	const total = 20
	svc := newCollectingAuditService(total)
	d := NewDispatcher(3, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < total; i++ {
		d.Enqueue(domain.AuditEvent{
			EntityKind: "user",
			EntityID:   fmt.Sprintf("u%d", i%5),
			Action:     domain.AuditUpdated,
		})
	}

	events := svc.wait(t)
	if len(events) != total {
		t.Fatalf("expected %d events, got %d", total, len(events))
	}
}

func TestDispatcher_ShardIsStablePerEntity(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	for _, id := range []string{"u1", "u2", "pr-abc", ""} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard for %q not stable: %d vs %d", id, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shard index out of range: %d", first)
		}
	}
}

func TestNewDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
