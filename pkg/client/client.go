// Package client is the Go counterpart of the site's form submission layer.
// Every call is bounded by a timeout, cancelled on exit, and maps transport
// failures to short user-facing messages instead of raw errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every submission request.
const DefaultTimeout = 30 * time.Second

// User-facing messages for transport-level failures.
const (
	timeoutMessage = "The request timed out. Check your connection and try again."
	connectMessage = "Cannot reach the server. Check your internet connection."
)

// ContactForm mirrors the POST /api/contact payload.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message,omitempty"`
}

// QuizForm mirrors the POST /api/quiz payload.
type QuizForm struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company,omitempty"`
	Service     string   `json:"service"`
	Budget      string   `json:"budget"`
	Timeline    string   `json:"timeline"`
	Goals       []string `json:"goals"`
	Description string   `json:"description"`
}

// Result mirrors the server envelope. Failed submissions carry a non-empty
// Error; transport problems are mapped into it as well, so callers handle
// exactly one shape.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
}

type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
}

type Option func(*Client)

// WithTimeout overrides the per-request bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient substitutes the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitContact pre-validates email and phone shape, then posts the form.
// Pre-validation is a fast-fail convenience; the server remains authoritative.
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) *Result {
	if !ValidEmail(form.Email) {
		return failure("Please enter a valid email address.")
	}
	if !ValidPhone(form.Phone) {
		return failure("Please enter a valid phone number.")
	}
	return c.post(ctx, "/api/contact", form)
}

// SubmitQuiz pre-validates email and phone shape, then posts the quiz.
func (c *Client) SubmitQuiz(ctx context.Context, form QuizForm) *Result {
	if !ValidEmail(form.Email) {
		return failure("Please enter a valid email address.")
	}
	if !ValidPhone(form.Phone) {
		return failure("Please enter a valid phone number.")
	}
	return c.post(ctx, "/api/quiz", form)
}

// SubscribeNewsletter posts a newsletter signup for the given address.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) *Result {
	if !ValidEmail(email) {
		return failure("Please enter a valid email address.")
	}
	return c.post(ctx, "/api/newsletter", map[string]string{"email": email})
}

func (c *Client) post(ctx context.Context, path string, payload any) *Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return failure(err.Error())
	}

	// One timer per request, released on every exit path.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return failure(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope Result
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil || envelope.Error == "" {
			// Non-JSON error body: synthesize a status message
			return failure(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
		}
		envelope.Success = false
		return &envelope
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return failure("Received a malformed response from the server.")
	}
	return &result
}

func mapTransportError(err error) *Result {
	if errors.Is(err, context.DeadlineExceeded) {
		return failure(timeoutMessage)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return failure(timeoutMessage)
		}
		return failure(connectMessage)
	}
	return failure(err.Error())
}

func failure(msg string) *Result {
	return &Result{Success: false, Error: msg}
}
