package email

import (
	"context"
	"testing"
	"time"

	"go-jetlab-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageID(t *testing.T) {
	id := newMessageID("info@jetlabco.com")
	assert.Regexp(t, `^<[0-9a-f-]{36}@jetlabco\.com>$`, id)

	other := newMessageID("info@jetlabco.com")
	assert.NotEqual(t, id, other)

	assert.Regexp(t, `@localhost>$`, newMessageID("not-an-address"))
}

func TestSMTPSenderIsConfigured(t *testing.T) {
	cfg := &config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     "587",
		SMTPUsername: "user",
		SMTPPassword: "pass",
	}
	assert.True(t, NewSMTPSender(cfg).IsConfigured())

	cfg.SMTPPassword = ""
	assert.False(t, NewSMTPSender(cfg).IsConfigured())
}

func TestSMTPSenderSendUnconfigured(t *testing.T) {
	sender := NewSMTPSender(&config.Config{})

	id, err := sender.Send(context.Background(), Message{Subject: "x"})
	require.Error(t, err)
	assert.Empty(t, id)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSMTPSenderDefaultTimeout(t *testing.T) {
	sender := NewSMTPSender(&config.Config{})
	assert.Equal(t, 30*time.Second, sender.timeout)

	sender = NewSMTPSender(&config.Config{SendTimeoutSeconds: 5})
	assert.Equal(t, 5*time.Second, sender.timeout)
}
