package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/art-space/artspace/internal/config"
	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/utils"
)

type httpMailer struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// resetMessage is the JSON body posted to the notification service.
type resetMessage struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// NewHTTPMailer constructs an HTTP implementation of [Mailer]. It normalises
// and validates the base URL from cfg.Address and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid URL.
func NewHTTPMailer(cfg config.Mailer, logger *logger.Logger) (Mailer, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid mailer address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpMailer{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendPasswordReset implements [Mailer]. It POSTs the reset token to
// POST /api/mail/password-reset on the notification service.
func (h *httpMailer) SendPasswordReset(ctx context.Context, email, resetToken string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(resetMessage{Email: email, ResetToken: resetToken}).
		Post("/api/mail/password-reset")
	if err != nil {
		return fmt.Errorf("password reset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return nil
}

// nopMailer is the [Mailer] used when no notification service is configured.
// Reset notifications are logged at warn level and dropped.
type nopMailer struct {
	logger *logger.Logger
}

// NewNopMailer constructs a [Mailer] that drops all notifications.
func NewNopMailer(logger *logger.Logger) Mailer {
	return &nopMailer{logger: logger}
}

func (n *nopMailer) SendPasswordReset(ctx context.Context, email, _ string) error {
	n.logger.Warn().Str("email", email).Msg("no mailer configured, dropping password reset notification")
	return nil
}
