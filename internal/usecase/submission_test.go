package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jetlab-backend/internal/domain"
	"go-jetlab-backend/internal/usecase"
	"go-jetlab-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender stands in for the SMTP transport.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func testRenderer() *email.Renderer {
	at := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	return &email.Renderer{Now: func() time.Time { return at }}
}

func contactFixture() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "5551234567",
		Service: "Web Development",
		Message: "Need a site",
	}
}

func TestSendContact(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubmissionUsecase(sender, testRenderer())

	var captured email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return("<abc@jetlabco.com>", nil).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(email.Message)
		})

	id, err := uc.SendContact(context.Background(), contactFixture())
	require.NoError(t, err)
	assert.Equal(t, "<abc@jetlabco.com>", id)

	sender.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, "JetLab Contact Form", captured.FromName)
	assert.Equal(t, "jane@example.com", captured.ReplyTo)
	assert.Contains(t, captured.Subject, "Web Development")
	assert.Contains(t, captured.Subject, "Jane Doe")
	// phone is normalized before rendering
	assert.Contains(t, captured.HTML, "+1 (555) 123-4567")
	assert.Contains(t, captured.Text, "+1 (555) 123-4567")
}

func TestSendContactDeliveryFailure(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubmissionUsecase(sender, testRenderer())

	sender.On("Send", mock.Anything, mock.Anything).Return("", errors.New("smtp auth failed"))

	id, err := uc.SendContact(context.Background(), contactFixture())
	require.Error(t, err)
	assert.Empty(t, id)
	assert.Contains(t, err.Error(), "smtp auth failed")
}

func TestSendContactTrimsFields(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubmissionUsecase(sender, testRenderer())

	var captured email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Return("<id@jetlabco.com>", nil).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(email.Message)
		})

	sub := contactFixture()
	sub.Email = "  jane@example.com  "
	sub.Name = " Jane Doe "

	_, err := uc.SendContact(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", captured.ReplyTo)
	assert.Equal(t, "New request: Web Development from Jane Doe", captured.Subject)
}

func TestSendQuiz(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubmissionUsecase(sender, testRenderer())

	var captured email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Return("<id@jetlabco.com>", nil).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(email.Message)
		})

	id, err := uc.SendQuiz(context.Background(), &domain.QuizSubmission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "15551234567",
		Company:     "Acme Inc",
		Service:     "SEO",
		Budget:      "$5k-$10k",
		Timeline:    "1-3 months",
		Goals:       []string{"More leads", "Better branding"},
		Description: "Grow traffic",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	assert.Equal(t, "JetLab Consultation", captured.FromName)
	assert.Equal(t, "jane@example.com", captured.ReplyTo)
	assert.Contains(t, captured.Subject, "$5k-$10k")
	assert.Contains(t, captured.HTML, "+1 (555) 123-4567")
	assert.Contains(t, captured.Text, "More leads, Better branding")
}

func TestSubscribeNewsletterHasNoReplyTo(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubmissionUsecase(sender, testRenderer())

	var captured email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Return("<id@jetlabco.com>", nil).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(email.Message)
		})

	_, err := uc.SubscribeNewsletter(context.Background(), &domain.NewsletterSubmission{Email: "x@x.com"})
	require.NoError(t, err)

	assert.Equal(t, "JetLab Newsletter", captured.FromName)
	assert.Empty(t, captured.ReplyTo)
	assert.Equal(t, "New newsletter subscription", captured.Subject)
	assert.Contains(t, captured.HTML, "x@x.com")
}
