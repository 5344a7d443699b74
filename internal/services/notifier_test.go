package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_DeliversQueuedMessages(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, testLogger())
	n.Start()

	for i := 0; i < 5; i++ {
		n.Enqueue(EmailMessage{To: "admin@cybershield.io", Subject: fmt.Sprintf("msg %d", i)})
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	n.Stop(ctx)

	assert.Len(t, sender.sentMessages(), 5)
}

func TestNotifier_SendFailureDoesNotStopWorker(t *testing.T) {
	sender := &flakySender{failFirst: 1}
	n := NewNotifier(sender, testLogger())
	n.Start()

	n.Enqueue(EmailMessage{Subject: "will fail"})
	n.Enqueue(EmailMessage{Subject: "will succeed"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	n.Stop(ctx)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Equal(t, 2, sender.attempts)
	assert.Equal(t, []string{"will succeed"}, sender.delivered)
}

func TestNotifier_EnqueueAfterStopDrops(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, testLogger())
	n.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	n.Stop(ctx)

	// Must not panic on the closed queue
	n.Enqueue(EmailMessage{Subject: "too late"})
	assert.Empty(t, sender.sentMessages())
}

func TestNotifier_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	// A sender stuck on its first message backs the queue up
	release := make(chan struct{})
	var once sync.Once
	sender := &blockingSender{release: release}

	n := NewNotifier(sender, testLogger())
	n.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// One in flight plus a full buffer, then overflow
		for i := 0; i < notifierQueueSize+10; i++ {
			n.Enqueue(EmailMessage{Subject: fmt.Sprintf("msg %d", i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	once.Do(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n.Stop(ctx)
}

// flakySender fails its first failFirst sends then succeeds
type flakySender struct {
	mu        sync.Mutex
	failFirst int
	attempts  int
	delivered []string
}

func (s *flakySender) Send(_ context.Context, msg EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.attempts <= s.failFirst {
		return errors.New("ses throttled")
	}
	s.delivered = append(s.delivered, msg.Subject)
	return nil
}

// blockingSender holds every send until released
type blockingSender struct {
	release chan struct{}
}

func (s *blockingSender) Send(ctx context.Context, _ EmailMessage) error {
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
