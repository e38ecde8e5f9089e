// Package notification delivers email notifications about activity
// changes. Mutations hand events to Notifier, which gates, composes and
// dispatches them on background workers.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/config"
	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/metrics"
	"github.com/heartmarshall/planner-backend/pkg/ctxutil"
)

type eventGate interface {
	ShouldNotify(ctx context.Context, userID uuid.UUID, event domain.EventType) bool
}

type dispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) Result
}

// ErrNotifierClosed is returned by Start after Shutdown.
var ErrNotifierClosed = errors.New("notifier closed")

type queuedEvent struct {
	ev        domain.NotificationEvent
	requestID string
}

// Notifier is a bounded in-memory queue drained by worker goroutines.
// Enqueue never blocks; when the queue is full the event is dropped.
type Notifier struct {
	gate       eventGate
	composer   *Composer
	dispatcher dispatcher
	workers    int
	timeout    time.Duration
	log        *slog.Logger

	queue chan queuedEvent
	wg    sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewNotifier creates a Notifier. Call Start before enqueueing.
func NewNotifier(log *slog.Logger, gate eventGate, composer *Composer, d dispatcher, cfg config.NotificationConfig) *Notifier {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Notifier{
		gate:       gate,
		composer:   composer,
		dispatcher: d,
		workers:    workers,
		timeout:    timeout,
		log:        log.With("service", "notifier"),
		queue:      make(chan queuedEvent, size),
	}
}

// Start launches the workers. Their sends derive from ctx with
// cancellation stripped, so an in-flight event is only abandoned by
// its send timeout or by Shutdown's deadline.
func (n *Notifier) Start(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrNotifierClosed
	}
	if n.started {
		return nil
	}
	n.started = true
	n.ctx, n.cancel = context.WithCancel(context.WithoutCancel(ctx))

	for range n.workers {
		n.wg.Add(1)
		go n.worker()
	}
	n.log.InfoContext(ctx, "notifier started",
		slog.Int("workers", n.workers),
		slog.Int("queue_size", cap(n.queue)),
	)
	return nil
}

// Enqueue hands ev to the workers. ctx is used only for log correlation;
// its cancellation does not affect delivery. It reports false when the
// event was dropped.
func (n *Notifier) Enqueue(ctx context.Context, ev domain.NotificationEvent) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		n.drop(ctx, ev, "notifier closed")
		return false
	}

	select {
	case n.queue <- queuedEvent{ev: ev, requestID: ctxutil.RequestIDFromCtx(ctx)}:
		metrics.NotificationQueueDepth.Inc()
		return true
	default:
		n.drop(ctx, ev, "queue full")
		return false
	}
}

func (n *Notifier) drop(ctx context.Context, ev domain.NotificationEvent, reason string) {
	metrics.NotificationsTotal.WithLabelValues(ev.Type.String(), metrics.OutcomeDropped).Inc()
	n.log.WarnContext(ctx, "notification dropped",
		slog.String("reason", reason),
		slog.String("type", ev.Type.String()),
		slog.String("user_id", ev.UserID.String()),
	)
}

// Shutdown stops accepting events and waits for queued ones to be
// processed. When ctx expires first, in-flight sends are cancelled and
// Shutdown returns without waiting for the workers.
func (n *Notifier) Shutdown(ctx context.Context) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	close(n.queue)
	started := n.started
	n.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.cancel()
		n.log.InfoContext(ctx, "notifier stopped")
		return nil
	case <-ctx.Done():
		n.cancel()
		return fmt.Errorf("notifier shutdown: %w", ctx.Err())
	}
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for item := range n.queue {
		metrics.NotificationQueueDepth.Dec()
		n.process(item)
	}
}

func (n *Notifier) process(item queuedEvent) {
	ctx, cancel := context.WithTimeout(n.ctx, n.timeout)
	defer cancel()
	if item.requestID != "" {
		ctx = ctxutil.WithRequestID(ctx, item.requestID)
	}
	ev := item.ev

	defer func() {
		if r := recover(); r != nil {
			n.log.ErrorContext(ctx, "notification panic",
				slog.String("type", ev.Type.String()),
				slog.Any("panic", r),
			)
		}
	}()

	if !n.gate.ShouldNotify(ctx, ev.UserID, ev.Type) {
		metrics.NotificationsTotal.WithLabelValues(ev.Type.String(), metrics.OutcomeSuppressed).Inc()
		n.log.DebugContext(ctx, "notification suppressed",
			slog.String("type", ev.Type.String()),
			slog.String("user_id", ev.UserID.String()),
		)
		return
	}

	msg, err := n.composer.ComposeEvent(ev)
	if err != nil {
		n.log.ErrorContext(ctx, "compose notification",
			slog.String("type", ev.Type.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	activityID := ev.Activity.ID
	n.dispatcher.Dispatch(ctx, DispatchRequest{
		UserID:     ev.UserID,
		Type:       ev.Type,
		ActivityID: &activityID,
		To:         ev.To,
		Subject:    msg.Subject,
		HTML:       msg.HTML,
	})
}
