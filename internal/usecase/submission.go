package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-jetlab-backend/internal/domain"
	"go-jetlab-backend/pkg/email"
	"go-jetlab-backend/pkg/logger"
	"go-jetlab-backend/pkg/phone"
)

// Sender display names, one per form type. The address itself is fixed by
// the SMTP configuration.
const (
	fromContact    = "JetLab Contact Form"
	fromQuiz       = "JetLab Consultation"
	fromNewsletter = "JetLab Newsletter"
)

type submissionUsecase struct {
	sender   email.Sender
	renderer *email.Renderer
}

// NewSubmissionUsecase creates the pipeline shared by the three form
// endpoints: trim → format phone → render → deliver.
func NewSubmissionUsecase(sender email.Sender, renderer *email.Renderer) domain.SubmissionUsecase {
	return &submissionUsecase{
		sender:   sender,
		renderer: renderer,
	}
}

func (uc *submissionUsecase) SendContact(ctx context.Context, sub *domain.ContactSubmission) (string, error) {
	rendered, err := uc.renderer.RenderContact(email.ContactData{
		Name:           strings.TrimSpace(sub.Name),
		Email:          strings.TrimSpace(sub.Email),
		Phone:          strings.TrimSpace(sub.Phone),
		FormattedPhone: phone.Format(strings.TrimSpace(sub.Phone)),
		Service:        strings.TrimSpace(sub.Service),
		Message:        strings.TrimSpace(sub.Message),
	})
	if err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}

	id, err := uc.sender.Send(ctx, email.Message{
		FromName: fromContact,
		ReplyTo:  strings.TrimSpace(sub.Email),
		Subject:  rendered.Subject,
		HTML:     rendered.HTML,
		Text:     rendered.Text,
	})
	if err != nil {
		return "", fmt.Errorf("send contact email: %w", err)
	}

	logger.Log.Info("contact form delivered", "message_id", id, "service", sub.Service)
	return id, nil
}

func (uc *submissionUsecase) SendQuiz(ctx context.Context, sub *domain.QuizSubmission) (string, error) {
	goals := make([]string, 0, len(sub.Goals))
	for _, g := range sub.Goals {
		goals = append(goals, strings.TrimSpace(g))
	}

	rendered, err := uc.renderer.RenderQuiz(email.QuizData{
		Name:           strings.TrimSpace(sub.Name),
		Email:          strings.TrimSpace(sub.Email),
		Phone:          strings.TrimSpace(sub.Phone),
		FormattedPhone: phone.Format(strings.TrimSpace(sub.Phone)),
		Company:        strings.TrimSpace(sub.Company),
		Service:        strings.TrimSpace(sub.Service),
		Budget:         strings.TrimSpace(sub.Budget),
		Timeline:       strings.TrimSpace(sub.Timeline),
		Goals:          goals,
		Description:    strings.TrimSpace(sub.Description),
	})
	if err != nil {
		return "", fmt.Errorf("render quiz email: %w", err)
	}

	id, err := uc.sender.Send(ctx, email.Message{
		FromName: fromQuiz,
		ReplyTo:  strings.TrimSpace(sub.Email),
		Subject:  rendered.Subject,
		HTML:     rendered.HTML,
		Text:     rendered.Text,
	})
	if err != nil {
		return "", fmt.Errorf("send quiz email: %w", err)
	}

	logger.Log.Info("quiz form delivered", "message_id", id, "service", sub.Service, "budget", sub.Budget)
	return id, nil
}

func (uc *submissionUsecase) SubscribeNewsletter(ctx context.Context, sub *domain.NewsletterSubmission) (string, error) {
	rendered, err := uc.renderer.RenderNewsletter(email.NewsletterData{
		Email: strings.TrimSpace(sub.Email),
	})
	if err != nil {
		return "", fmt.Errorf("render newsletter email: %w", err)
	}

	// Newsletter notifications carry no Reply-To: the operator inbox is
	// informed of the signup, not invited to reply.
	id, err := uc.sender.Send(ctx, email.Message{
		FromName: fromNewsletter,
		Subject:  rendered.Subject,
		HTML:     rendered.HTML,
		Text:     rendered.Text,
	})
	if err != nil {
		return "", fmt.Errorf("send newsletter email: %w", err)
	}

	logger.Log.Info("newsletter subscription delivered", "message_id", id)
	return id, nil
}
