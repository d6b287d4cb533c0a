// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailer sends the contact-form notification email. Sending is
// fire-and-forget: the HTTP response never waits on it and a failed send
// is only logged.
package mailer

import (
	"fmt"
	"html"
	"log/slog"
	"net/smtp"
	"strconv"

	"github.com/tkddzwirzyno/website/internal/config"
	"github.com/tkddzwirzyno/website/internal/pb"
)

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends contact notifications over SMTP.
type Mailer struct {
	cfg  *config.Config
	log  *slog.Logger
	send SendFunc
}

// New creates a Mailer. When SMTP is not configured, Notify is a no-op.
func New(cfg *config.Config, log *slog.Logger) *Mailer {
	return NewWithSender(cfg, log, smtp.SendMail)
}

// NewWithSender creates a Mailer with a custom SMTP send function, so
// callers can observe or fail deliveries.
func NewWithSender(cfg *config.Config, log *slog.Logger, send SendFunc) *Mailer {
	return &Mailer{cfg: cfg, log: log, send: send}
}

// Notify dispatches the notification for a received contact message in a
// background goroutine and returns immediately. It has no return value:
// by the time the send fails or succeeds, the HTTP response that
// triggered it is already on the wire.
func (m *Mailer) Notify(msg pb.ContactMessage) {
	if !m.cfg.NotifyEnabled() {
		return
	}

	go func() {
		if err := m.deliver(msg); err != nil {
			m.log.Error("contact notification failed", "error", err, "from", msg.Email)
			return
		}
		m.log.Info("contact notification sent", "from", msg.Email)
	}()
}

func (m *Mailer) deliver(msg pb.ContactMessage) error {
	addr := m.cfg.SMTPHost + ":" + strconv.Itoa(m.cfg.SMTPPort)

	body := "From: " + m.cfg.SMTPFrom + "\r\n" +
		"To: " + m.cfg.SMTPTo + "\r\n" +
		"Subject: Nowa wiadomość ze strony\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		renderBody(msg)

	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	}

	if err := m.send(addr, auth, m.cfg.SMTPFrom, []string{m.cfg.SMTPTo}, []byte(body)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// renderBody builds the HTML body. Form values are user input and get
// escaped before embedding.
func renderBody(msg pb.ContactMessage) string {
	return fmt.Sprintf(
		"<h2>Nowa wiadomość ze strony</h2>"+
			"<p><b>Imię i nazwisko:</b> %s</p>"+
			"<p><b>E-mail:</b> %s</p>"+
			"<p><b>Telefon:</b> %s</p>"+
			"<p><b>Wiadomość:</b></p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		html.EscapeString(msg.Message),
	)
}
