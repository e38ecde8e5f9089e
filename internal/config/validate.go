package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	if err := c.Notification.validate(); err != nil {
		return fmt.Errorf("notification: %w", err)
	}

	switch c.Activity.DuplicateStrategy {
	case DuplicateStrategyAuto, DuplicateStrategyScan, DuplicateStrategyNative:
	default:
		return fmt.Errorf("activity.duplicate_strategy must be auto, scan or native (got %q)", c.Activity.DuplicateStrategy)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rps and burst must be > 0 when enabled")
	}

	return nil
}

func (e *EmailConfig) validate() error {
	switch e.Provider {
	case EmailProviderNone, EmailProviderLog:
	case EmailProviderResend:
		// A missing key is allowed: the transport reports itself as
		// unconfigured and every dispatch is logged as failed.
	default:
		return fmt.Errorf("provider must be none, log or resend (got %q)", e.Provider)
	}
	if e.From == "" {
		return fmt.Errorf("from is required")
	}
	return nil
}

func (n *NotificationConfig) validate() error {
	if n.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", n.Workers)
	}
	if n.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", n.QueueSize)
	}
	if n.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %s)", n.SendTimeout)
	}

	loc, err := time.LoadLocation(n.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	n.Location = loc

	return nil
}
