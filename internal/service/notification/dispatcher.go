package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/planner-backend/internal/adapter/email"
	"github.com/heartmarshall/planner-backend/internal/config"
	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/metrics"
)

type emailLogWriter interface {
	Create(ctx context.Context, l domain.EmailLog) error
}

// DispatchRequest is one email to send.
type DispatchRequest struct {
	UserID     uuid.UUID
	Type       domain.EventType
	ActivityID *uuid.UUID
	To         string
	Subject    string
	HTML       string
}

// Result is the outcome of a dispatch. Error is empty on success.
type Result struct {
	Success   bool
	MessageID string
	Error     string
	// NotConfigured is set when the transport cannot deliver at all.
	NotConfigured bool
}

// Dispatcher sends an email through the configured transport and records
// the attempt in the email log.
type Dispatcher struct {
	sender     email.Sender
	logs       emailLogWriter
	maxRetries uint64
	retryBase  time.Duration
	log        *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(log *slog.Logger, sender email.Sender, logs emailLogWriter, cfg config.NotificationConfig) *Dispatcher {
	base := cfg.RetryBase
	if base <= 0 {
		base = 500 * time.Millisecond
	}
	return &Dispatcher{
		sender:     sender,
		logs:       logs,
		maxRetries: cfg.MaxRetries,
		retryBase:  base,
		log:        log.With("service", "notification_dispatcher"),
	}
}

// Configured reports whether the transport can deliver.
func (d *Dispatcher) Configured() bool {
	return d.sender.Name() != config.EmailProviderNone
}

// Dispatch sends req, retrying transient failures, and writes exactly one
// email log row. It never returns an error; the outcome is in Result.
func (d *Dispatcher) Dispatch(ctx context.Context, req DispatchRequest) Result {
	msg := email.Message{To: req.To, Subject: req.Subject, HTML: req.HTML}

	start := time.Now()
	var messageID string
	backoff := retry.WithMaxRetries(d.maxRetries, retry.NewExponential(d.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		id, sendErr := d.sender.Send(ctx, msg)
		if sendErr == nil {
			messageID = id
			return nil
		}
		if errors.Is(sendErr, email.ErrNotConfigured) || ctx.Err() != nil {
			return sendErr
		}
		d.log.WarnContext(ctx, "email send attempt failed",
			slog.String("type", req.Type.String()),
			slog.String("error", sendErr.Error()),
		)
		return retry.RetryableError(sendErr)
	})
	metrics.EmailSendDuration.WithLabelValues(d.sender.Name()).Observe(time.Since(start).Seconds())

	res := Result{Success: err == nil, MessageID: messageID}
	entry := domain.EmailLog{
		UserID:     req.UserID,
		EmailType:  req.Type,
		ActivityID: req.ActivityID,
		SentTo:     req.To,
		Subject:    req.Subject,
		Status:     domain.EmailStatusSent,
	}
	if err != nil {
		res.Error = err.Error()
		res.NotConfigured = errors.Is(err, email.ErrNotConfigured)
		entry.Status = domain.EmailStatusFailed
		entry.Error = &res.Error
		metrics.NotificationsTotal.WithLabelValues(req.Type.String(), metrics.OutcomeFailed).Inc()
		d.log.ErrorContext(ctx, "email not sent",
			slog.String("type", req.Type.String()),
			slog.String("user_id", req.UserID.String()),
			slog.String("error", res.Error),
		)
	} else {
		metrics.NotificationsTotal.WithLabelValues(req.Type.String(), metrics.OutcomeSent).Inc()
	}

	// The log row is written even when ctx has expired.
	if logErr := d.logs.Create(context.WithoutCancel(ctx), entry); logErr != nil {
		d.log.ErrorContext(ctx, "write email log",
			slog.String("user_id", req.UserID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	return res
}
