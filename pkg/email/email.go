// Package email builds and delivers the notification messages produced by
// form submissions. Rendering is pure; delivery goes through the Sender
// interface so handlers and tests never touch SMTP directly.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"go-jetlab-backend/config"

	"github.com/google/uuid"
	jwemail "github.com/jordan-wright/email"
)

// Message is a fully rendered outbound email. The destination inbox and the
// sender address are fixed per deployment and owned by the Sender.
type Message struct {
	FromName string // display name, distinct per form type
	ReplyTo  string // submitter address; empty for newsletter notifications
	Subject  string
	HTML     string
	Text     string
}

// Sender delivers a message and reports the assigned Message-Id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SMTPSender sends messages through a single authenticated SMTP account.
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	timeout   time.Duration
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	timeout := time.Duration(cfg.SendTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SMTPSender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		timeout:   timeout,
	}
}

// IsConfigured checks whether the sender has usable SMTP credentials.
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send builds a multipart (text + HTML) message and hands it to the SMTP
// server. The wait is bounded by the configured timeout; the underlying
// transfer is not cancelled mid-flight, the caller just stops waiting.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if !s.IsConfigured() {
		return "", fmt.Errorf("smtp transport is not configured")
	}

	id := newMessageID(s.fromEmail)

	e := jwemail.NewEmail()
	e.From = fmt.Sprintf("%q <%s>", msg.FromName, s.fromEmail)
	e.To = []string{s.toEmail}
	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)
	e.HTML = []byte(msg.HTML)
	e.Headers.Set("Message-Id", id)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	done := make(chan error, 1)
	go func() {
		done <- e.Send(addr, auth)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("smtp send failed: %w", err)
		}
		return id, nil
	case <-ctx.Done():
		return "", fmt.Errorf("smtp send to %s timed out: %w", addr, ctx.Err())
	}
}

// newMessageID generates an RFC 5322 style Message-Id. net/smtp does not
// return a server-assigned id, so one is minted locally before the send.
func newMessageID(from string) string {
	domain := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i+1 < len(from) {
		domain = from[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
