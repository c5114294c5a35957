package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

type recordingNotificationService struct {
	mu       sync.Mutex
	received []ports.NotificationInput
}

func (s *recordingNotificationService) Process(_ context.Context, input ports.NotificationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, input)
	return nil
}

func (s *recordingNotificationService) List(_ context.Context, _ *domain.User) ([]domain.Notification, error) {
	return nil, nil
}

func (s *recordingNotificationService) MarkRead(_ context.Context, _ *domain.User, _ string) error {
	return nil
}

func (s *recordingNotificationService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func TestDispatcher_DeliversAll(t *testing.T) {
	svc := &recordingNotificationService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Notify(ports.NotificationInput{RecipientID: "c1", Kind: "test", Message: "m"})
	}

	deadline := time.Now().Add(2 * time.Second)
	for svc.count() < 10 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 10 notifications, got %d", svc.count())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingNotificationService{}, zerolog.Nop())

	first := d.shardIndex("c1")
	for i := 0; i < 100; i++ {
		if d.shardIndex("c1") != first {
			t.Fatalf("shard index must be deterministic per recipient")
		}
	}
}
