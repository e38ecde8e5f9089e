// Package email provides outbound email transports: a disabled transport,
// a log-only transport for development and a Resend API transport.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/planner-backend/internal/config"
)

// ErrNotConfigured is returned by a transport that cannot deliver at all.
// Callers must not retry it.
var ErrNotConfigured = errors.New("email service not configured")

// Message is a single rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a rendered message and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
	Name() string
}

// New builds the transport selected by cfg.Provider.
func New(cfg config.EmailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Provider {
	case config.EmailProviderNone, "":
		return Disabled{}, nil
	case config.EmailProviderLog:
		return NewLogSender(logger), nil
	case config.EmailProviderResend:
		if cfg.ResendAPIKey == "" {
			logger.Warn("RESEND_API_KEY is empty, email delivery disabled")
			return Disabled{}, nil
		}
		return NewResendSender(cfg.ResendAPIKey, formatFrom(cfg.FromName, cfg.From), logger), nil
	default:
		return nil, fmt.Errorf("email: unknown provider %q", cfg.Provider)
	}
}

func formatFrom(name, addr string) string {
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", name, addr)
}

// Disabled rejects every message with ErrNotConfigured.
type Disabled struct{}

func (Disabled) Send(context.Context, Message) (string, error) { return "", ErrNotConfigured }

func (Disabled) Name() string { return config.EmailProviderNone }
