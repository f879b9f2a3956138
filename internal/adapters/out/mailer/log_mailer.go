// Package mailer implements ports.Mailer. Outgoing mail is written to the
// structured log; an SMTP or provider-backed Mailer can replace it without
// touching the use cases.
package mailer

import (
	"context"
	"log/slog"
)

type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("component", "mailer")}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	m.logger.InfoContext(ctx, "Password reset requested",
		"to", email,
		"subject", "Password Reset Request",
		"link", link,
	)
	return nil
}
