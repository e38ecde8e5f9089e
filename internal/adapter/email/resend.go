package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	from   string
	log    *slog.Logger
}

// NewResendSender creates a ResendSender with the default API URL.
func NewResendSender(apiKey, from string, logger *slog.Logger) *ResendSender {
	return &ResendSender{
		client: resend.NewCustomClient(&http.Client{Timeout: 10 * time.Second}, apiKey),
		from:   from,
		log:    logger.With("adapter", "email.resend"),
	}
}

// NewResendSenderWithURL creates a ResendSender against a custom base URL (for testing).
func NewResendSenderWithURL(baseURL, apiKey, from string, logger *slog.Logger) (*ResendSender, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("resend: parse base url: %w", err)
	}
	s := NewResendSender(apiKey, from, logger)
	s.client.BaseURL = u
	return s, nil
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	resp, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		s.log.WarnContext(ctx, "resend send failed", slog.String("to", msg.To), slog.String("error", err.Error()))
		return "", fmt.Errorf("resend: send: %w", err)
	}

	s.log.DebugContext(ctx, "resend accepted", slog.String("message_id", resp.Id))
	return resp.Id, nil
}

func (s *ResendSender) Name() string { return "resend" }
