package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender writes messages to the logger instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "email.log")}
}

func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	id := "log-" + uuid.NewString()
	s.log.InfoContext(ctx, "email captured",
		slog.String("message_id", id),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return id, nil
}

func (s *LogSender) Name() string { return "log" }
