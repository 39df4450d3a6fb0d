package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"autotrader/internal/domain"
)

// Mailer delivers target-hit alerts by email using the Gmail
// app-password settings saved from the dashboard. The settings are
// re-read per alert so a settings change applies without a restart.
type Mailer struct {
	settings domain.SettingsRepository
	smtpAddr string
	location *time.Location
}

// NewMailer creates a new Mailer. smtpAddr is "host:port".
func NewMailer(settings domain.SettingsRepository, smtpAddr, timezone string) *Mailer {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}

	return &Mailer{
		settings: settings,
		smtpAddr: smtpAddr,
		location: location,
	}
}

// NotifyTargetHit emails the one-time alert for a position that crossed
// its target. Missing settings skip delivery without error.
func (m *Mailer) NotifyTargetHit(ctx context.Context, position domain.Position, at time.Time) error {
	settings, err := m.settings.LoadEmailSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load email settings: %w", err)
	}
	if !settings.Configured() {
		return nil
	}

	subject := fmt.Sprintf("AUTOTRADER: target hit on %s %s", position.Side, position.Pair)
	body := fmt.Sprintf(
		"Pair: %s\r\nSide: %s (%s)\r\nCurrent price: %.4f\r\nTarget: %.4f\r\nPnL: %.2f%%\r\nTime: %s\r\n",
		position.Pair,
		position.Side,
		position.Mode,
		position.CurrentPrice,
		position.TargetPrice,
		position.PnLPercent,
		at.In(m.location).Format("2006-01-02 15:04:05"),
	)

	msg := strings.Join([]string{
		"From: " + settings.FromEmail,
		"To: " + settings.ToEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	host := m.smtpAddr
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	auth := smtp.PlainAuth("", settings.FromEmail, settings.AppPassword, host)

	if err := smtp.SendMail(m.smtpAddr, auth, settings.FromEmail, []string{settings.ToEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
