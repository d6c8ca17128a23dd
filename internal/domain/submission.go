package domain

import "context"

// FormType tags the three public submission endpoints.
type FormType string

const (
	FormContact    FormType = "contact"
	FormQuiz       FormType = "quiz"
	FormNewsletter FormType = "newsletter"
)

// ContactSubmission is the payload of POST /api/contact.
type ContactSubmission struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10,max=20"`
	Service string `json:"service" binding:"required,min=2,max=100"`
	Message string `json:"message" binding:"omitempty,max=2000"`
}

// QuizSubmission is the payload of POST /api/quiz. Goals must be present but
// may be empty; the frontend enforces at least one selection.
type QuizSubmission struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required,min=10,max=20"`
	Company     string   `json:"company" binding:"omitempty,max=100"`
	Service     string   `json:"service" binding:"required,min=2,max=100"`
	Budget      string   `json:"budget" binding:"required"`
	Timeline    string   `json:"timeline" binding:"required"`
	Goals       []string `json:"goals" binding:"required"`
	Description string   `json:"description" binding:"required,max=2000"`
}

// NewsletterSubmission is the payload of POST /api/newsletter.
type NewsletterSubmission struct {
	Email string `json:"email" binding:"required,email"`
}

// SubmissionUsecase runs the normalize → render → deliver pipeline for a
// validated submission and returns the transport message id.
type SubmissionUsecase interface {
	SendContact(ctx context.Context, sub *ContactSubmission) (string, error)
	SendQuiz(ctx context.Context, sub *QuizSubmission) (string, error)
	SubscribeNewsletter(ctx context.Context, sub *NewsletterSubmission) (string, error)
}
