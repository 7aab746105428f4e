// internal/service/notifier.go
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"farmvora/internal/domain"
	"farmvora/internal/repository"
)

// DefaultNotifyTimeout bounds one best-effort delivery.
const DefaultNotifyTimeout = 5 * time.Second

// Notifier delivers in-app notifications without blocking the caller. A
// failed delivery is logged and counted; it never fails the operation that
// triggered it.
type Notifier struct {
	q        repository.DBExecutor
	repo     repository.NotificationRepository
	timeout  time.Duration
	logger   *slog.Logger
	recorder Recorder
	wg       sync.WaitGroup
}

func NewNotifier(q repository.DBExecutor, repo repository.NotificationRepository, timeout time.Duration, logger *slog.Logger, recorder Recorder) *Notifier {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	return &Notifier{
		q:        q,
		repo:     repo,
		timeout:  timeout,
		logger:   logger,
		recorder: recorderOrNop(recorder),
	}
}

// Notify hands batch off for delivery in the background. The request
// context's values are kept but its cancellation is not.
func (n *Notifier) Notify(ctx context.Context, batch ...domain.Notification) {
	if len(batch) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliver(detached, batch)
	}()
}

func (n *Notifier) deliver(ctx context.Context, batch []domain.Notification) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	err := n.repo.CreateNotifications(ctx, n.q, batch)
	kind := string(batch[0].Type)
	n.recorder.NotificationDelivered(kind, err)
	if err != nil {
		n.logger.Error("Failed to deliver notifications", "type", kind, "count", len(batch), "error", err)
	}
}

// Wait blocks until every pending delivery has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
