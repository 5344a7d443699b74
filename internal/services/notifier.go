package services

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	notifierQueueSize   = 64
	notifierSendTimeout = 10 * time.Second
)

// Notifier dispatches emails from a background queue so notification
// latency and failures never reach the request path. Send failures are
// logged and dropped; there is no retry.
type Notifier struct {
	sender EmailSender
	logger *slog.Logger
	queue  chan EmailMessage

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewNotifier creates a notifier backed by the given sender
func NewNotifier(sender EmailSender, logger *slog.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		logger: logger,
		queue:  make(chan EmailMessage, notifierQueueSize),
	}
}

// Start launches the dispatch worker
func (n *Notifier) Start() {
	n.wg.Add(1)
	go n.run()
}

func (n *Notifier) run() {
	defer n.wg.Done()

	for msg := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), notifierSendTimeout)
		err := n.sender.Send(ctx, msg)
		cancel()

		if err != nil {
			n.logger.Warn("notification send failed",
				slog.String("subject", msg.Subject),
				slog.Any("error", err))
		}
	}
}

// Enqueue queues a message for background delivery. Never blocks: when
// the queue is full the message is dropped and the drop is logged.
func (n *Notifier) Enqueue(msg EmailMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		n.logger.Warn("notifier stopped, dropping message", slog.String("subject", msg.Subject))
		return
	}

	select {
	case n.queue <- msg:
	default:
		n.logger.Warn("notification queue full, dropping message", slog.String("subject", msg.Subject))
	}
}

// Stop drains the queue and waits for in-flight sends, bounded by ctx
func (n *Notifier) Stop(ctx context.Context) {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.logger.Info("notifier stopped")
	case <-ctx.Done():
		n.logger.Warn("notifier stop timed out, abandoning queued notifications")
	}
}
