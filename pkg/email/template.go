package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	ttemplate "text/template"
	"time"
)

// ContactData is a contact submission prepared for rendering. Phone holds the
// raw value (used in tel: links), FormattedPhone the display form.
type ContactData struct {
	Name           string
	Email          string
	Phone          string
	FormattedPhone string
	Service        string
	Message        string
}

// QuizData is a consultation quiz submission prepared for rendering.
type QuizData struct {
	Name           string
	Email          string
	Phone          string
	FormattedPhone string
	Company        string
	Service        string
	Budget         string
	Timeline       string
	Goals          []string
	Description    string
}

// NewsletterData is a newsletter signup prepared for rendering.
type NewsletterData struct {
	Email string
}

// Rendered holds the three representations of a notification message.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer turns submission data into subject/html/text. It is pure apart
// from the clock, which tests override to pin the footer timestamp.
type Renderer struct {
	Now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

func (r *Renderer) stamp() string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return now().UTC().Format("Jan 2, 2006 15:04 MST")
}

func (r *Renderer) RenderContact(d ContactData) (Rendered, error) {
	view := struct {
		ContactData
		SentAt string
	}{d, r.stamp()}

	html, err := execHTML(contactHTML, view)
	if err != nil {
		return Rendered{}, err
	}
	text, err := execText(contactText, view)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		Subject: fmt.Sprintf("New request: %s from %s", d.Service, d.Name),
		HTML:    html,
		Text:    text,
	}, nil
}

func (r *Renderer) RenderQuiz(d QuizData) (Rendered, error) {
	view := struct {
		QuizData
		SentAt string
	}{d, r.stamp()}

	html, err := execHTML(quizHTML, view)
	if err != nil {
		return Rendered{}, err
	}
	text, err := execText(quizText, view)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		Subject: fmt.Sprintf("Consultation request: %s from %s (%s)", d.Service, d.Name, d.Budget),
		HTML:    html,
		Text:    text,
	}, nil
}

func (r *Renderer) RenderNewsletter(d NewsletterData) (Rendered, error) {
	view := struct {
		NewsletterData
		SentAt string
	}{d, r.stamp()}

	html, err := execHTML(newsletterHTML, view)
	if err != nil {
		return Rendered{}, err
	}
	text, err := execText(newsletterText, view)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		Subject: "New newsletter subscription",
		HTML:    html,
		Text:    text,
	}, nil
}

func execHTML(t *template.Template, view any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute html template %q: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func execText(t *ttemplate.Template, view any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute text template %q: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

// nl2br escapes a free-text field and converts newlines to <br> so multi-line
// messages survive the HTML body.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

var htmlFuncs = template.FuncMap{"nl2br": nl2br}

var textFuncs = ttemplate.FuncMap{"join": strings.Join}

const emailStyle = `
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #000; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
    .section { margin-bottom: 25px; padding: 15px; background: white; border-radius: 6px; border-left: 4px solid #000; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #555; }
    .value { margin-top: 5px; }
    .goals { display: flex; flex-wrap: wrap; gap: 8px; margin-top: 10px; }
    .goal-tag { background: #000; color: white; padding: 4px 12px; border-radius: 20px; font-size: 12px; }
    .footer { text-align: center; margin-top: 20px; padding: 20px; color: #888; font-size: 14px; }
`

var contactHTML = template.Must(template.New("contact").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>` + emailStyle + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>New contact form request</h2>
      <p>From: {{.Name}}</p>
      <p>Service: {{.Service}}</p>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Name:</div>
        <div class="value">{{.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
      </div>
      <div class="field">
        <div class="label">Phone:</div>
        <div class="value"><a href="tel:{{.Phone}}">{{.FormattedPhone}}</a></div>
      </div>
      <div class="field">
        <div class="label">Requested service:</div>
        <div class="value"><strong>{{.Service}}</strong></div>
      </div>
      {{if .Message}}
      <div class="field">
        <div class="label">Message:</div>
        <div class="value">{{nl2br .Message}}</div>
      </div>
      {{end}}
    </div>
    <div class="footer">
      <p>Sent from jetlabco.com | {{.SentAt}}</p>
    </div>
  </div>
</body>
</html>
`))

var contactText = ttemplate.Must(ttemplate.New("contact").Funcs(textFuncs).Parse(`NEW REQUEST FROM JETLABCO.COM

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.FormattedPhone}}
Service: {{.Service}}
{{if .Message}}Message: {{.Message}}
{{end}}
Date: {{.SentAt}}
`))

var quizHTML = template.Must(template.New("quiz").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>` + emailStyle + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>Consultation request: {{.Service}}</h2>
      <p>Detailed request from {{.Name}}</p>
      <p><strong>Budget: {{.Budget}}</strong></p>
    </div>
    <div class="content">
      <div class="section">
        <h3>Client</h3>
        <div class="field">
          <div class="label">Name</div>
          <div class="value">{{.Name}}</div>
        </div>
        <div class="field">
          <div class="label">Email</div>
          <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
        </div>
        <div class="field">
          <div class="label">Phone</div>
          <div class="value"><a href="tel:{{.Phone}}">{{.FormattedPhone}}</a></div>
        </div>
        {{if .Company}}
        <div class="field">
          <div class="label">Company</div>
          <div class="value">{{.Company}}</div>
        </div>
        {{end}}
      </div>
      <div class="section">
        <h3>Project details</h3>
        <div class="field">
          <div class="label">Service</div>
          <div class="value"><strong>{{.Service}}</strong></div>
        </div>
        <div class="field">
          <div class="label">Budget</div>
          <div class="value"><strong>{{.Budget}}</strong></div>
        </div>
        <div class="field">
          <div class="label">Timeline</div>
          <div class="value">{{.Timeline}}</div>
        </div>
      </div>
      <div class="section">
        <h3>Project goals</h3>
        <div class="goals">
          {{range .Goals}}<span class="goal-tag">{{.}}</span>{{end}}
        </div>
      </div>
      <div class="section">
        <h3>Project description</h3>
        <div class="value">{{nl2br .Description}}</div>
      </div>
    </div>
    <div class="footer">
      <p>Sent from jetlabco.com | {{.SentAt}}</p>
    </div>
  </div>
</body>
</html>
`))

var quizText = ttemplate.Must(ttemplate.New("quiz").Funcs(textFuncs).Parse(`CONSULTATION REQUEST FROM JETLABCO.COM

Client:
- Name: {{.Name}}
- Email: {{.Email}}
- Phone: {{.FormattedPhone}}
{{if .Company}}- Company: {{.Company}}
{{end}}
Project details:
- Service: {{.Service}}
- Budget: {{.Budget}}
- Timeline: {{.Timeline}}
- Goals: {{join .Goals ", "}}

Project description:
{{.Description}}

Date: {{.SentAt}}
`))

var newsletterHTML = template.Must(template.New("newsletter").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>` + emailStyle + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>New newsletter subscription</h2>
    </div>
    <div class="content">
      <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
      <p><strong>Subscribed:</strong> {{.SentAt}}</p>
      <p><strong>Source:</strong> jetlabco.com</p>
    </div>
    <div class="footer">
      <p>Sent from jetlabco.com</p>
    </div>
  </div>
</body>
</html>
`))

var newsletterText = ttemplate.Must(ttemplate.New("newsletter").Funcs(textFuncs).Parse(`NEW NEWSLETTER SUBSCRIPTION

Email: {{.Email}}
Subscribed: {{.SentAt}}
Source: jetlabco.com
`))
