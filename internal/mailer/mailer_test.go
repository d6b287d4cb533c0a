// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mailer

import (
	"errors"
	"io"
	"log/slog"
	"net/smtp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkddzwirzyno/website/internal/config"
	"github.com/tkddzwirzyno/website/internal/pb"
)

type capturedSend struct {
	addr string
	from string
	to   []string
	body string
}

// newTestMailer swaps the SMTP send for a recorder that signals done.
func newTestMailer(cfg *config.Config, sendErr error) (*Mailer, chan capturedSend) {
	sent := make(chan capturedSend, 1)
	var once sync.Once
	send := func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		once.Do(func() {
			sent <- capturedSend{addr: addr, from: from, to: to, body: string(msg)}
		})
		return sendErr
	}
	m := NewWithSender(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), send)
	return m, sent
}

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost: "smtp.example.pl",
		SMTPPort: 587,
		SMTPFrom: "strona@example.pl",
		SMTPTo:   "klub@example.pl",
	}
}

func TestNotifySendsEscapedMessage(t *testing.T) {
	m, sent := newTestMailer(testConfig(), nil)

	m.Notify(pb.ContactMessage{
		Name:    "Jan <na>",
		Email:   "jan@example.pl",
		Message: "Pytanie o zapisy",
	})

	var got capturedSend
	select {
	case got = <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("send was never called")
	}

	assert.Equal(t, "smtp.example.pl:587", got.addr)
	assert.Equal(t, "strona@example.pl", got.from)
	require.Len(t, got.to, 1)
	assert.Equal(t, "klub@example.pl", got.to[0])

	assert.Contains(t, got.body, "Subject: Nowa wiadomość ze strony")
	assert.Contains(t, got.body, "Pytanie o zapisy")
	// User input lands in an HTML body and must arrive escaped.
	assert.Contains(t, got.body, "Jan &lt;na&gt;")
	assert.NotContains(t, got.body, "<na>")
}

func TestNotifySwallowsSendFailure(t *testing.T) {
	m, sent := newTestMailer(testConfig(), errors.New("connection refused"))

	// Must not panic or block the caller.
	m.Notify(pb.ContactMessage{Email: "jan@example.pl", Message: "x"})

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("send was never called")
	}
}

func TestNotifyDisabledWithoutSMTPHost(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPHost = ""
	m, sent := newTestMailer(cfg, nil)

	m.Notify(pb.ContactMessage{Email: "jan@example.pl", Message: "x"})

	select {
	case <-sent:
		t.Fatal("send called with SMTP disabled")
	case <-time.After(50 * time.Millisecond):
	}
}
