package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRenderer() *Renderer {
	at := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	return &Renderer{Now: func() time.Time { return at }}
}

func contactFixture() ContactData {
	return ContactData{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "5551234567",
		FormattedPhone: "+1 (555) 123-4567",
		Service:        "Web Development",
		Message:        "Need a site",
	}
}

func quizFixture() QuizData {
	return QuizData{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "5551234567",
		FormattedPhone: "+1 (555) 123-4567",
		Company:        "Acme Inc",
		Service:        "Web Development",
		Budget:         "$5k-$10k",
		Timeline:       "1-3 months",
		Goals:          []string{"More leads", "Better branding", "Faster site"},
		Description:    "Line one\nLine two",
	}
}

func TestRenderContact(t *testing.T) {
	r := fixedRenderer()

	got, err := r.RenderContact(contactFixture())
	require.NoError(t, err)

	assert.Equal(t, "New request: Web Development from Jane Doe", got.Subject)
	assert.Contains(t, got.HTML, "Jane Doe")
	assert.Contains(t, got.HTML, "mailto:jane@example.com")
	assert.Contains(t, got.HTML, "+1 (555) 123-4567")
	assert.Contains(t, got.HTML, "Need a site")
	assert.Contains(t, got.Text, "Phone: +1 (555) 123-4567")
	assert.Contains(t, got.Text, "Message: Need a site")
}

func TestRenderContactOmitsEmptyMessage(t *testing.T) {
	r := fixedRenderer()
	d := contactFixture()
	d.Message = ""

	got, err := r.RenderContact(d)
	require.NoError(t, err)

	assert.NotContains(t, got.HTML, "Message:")
	assert.NotContains(t, got.Text, "Message:")
}

func TestRenderContactDeterministic(t *testing.T) {
	r := fixedRenderer()

	first, err := r.RenderContact(contactFixture())
	require.NoError(t, err)
	second, err := r.RenderContact(contactFixture())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderContactEscapesMarkup(t *testing.T) {
	r := fixedRenderer()
	d := contactFixture()
	d.Name = `<script>alert("x")</script>`
	d.Message = "hello <b>bold</b>\nworld"

	got, err := r.RenderContact(d)
	require.NoError(t, err)

	assert.NotContains(t, got.HTML, "<script>")
	assert.Contains(t, got.HTML, "&lt;script&gt;")
	assert.NotContains(t, got.HTML, "<b>bold</b>")
	// escaped newline becomes a line break, markup stays inert
	assert.Contains(t, got.HTML, "hello &lt;b&gt;bold&lt;/b&gt;<br>world")
	// text body keeps the newline verbatim
	assert.Contains(t, got.Text, "hello <b>bold</b>\nworld")
}

func TestRenderQuiz(t *testing.T) {
	r := fixedRenderer()

	got, err := r.RenderQuiz(quizFixture())
	require.NoError(t, err)

	assert.Equal(t, "Consultation request: Web Development from Jane Doe ($5k-$10k)", got.Subject)
	assert.Contains(t, got.HTML, "Acme Inc")
	assert.Contains(t, got.HTML, "1-3 months")
	assert.Contains(t, got.HTML, "Line one<br>Line two")
	assert.Contains(t, got.Text, "Goals: More leads, Better branding, Faster site")
	assert.Contains(t, got.Text, "Line one\nLine two")
}

func TestRenderQuizGoalTagsKeepOrder(t *testing.T) {
	r := fixedRenderer()

	got, err := r.RenderQuiz(quizFixture())
	require.NoError(t, err)

	first := strings.Index(got.HTML, "More leads")
	second := strings.Index(got.HTML, "Better branding")
	third := strings.Index(got.HTML, "Faster site")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	assert.Equal(t, 3, strings.Count(got.HTML, `class="goal-tag"`))
}

func TestRenderQuizOmitsEmptyCompany(t *testing.T) {
	r := fixedRenderer()
	d := quizFixture()
	d.Company = ""

	got, err := r.RenderQuiz(d)
	require.NoError(t, err)

	assert.NotContains(t, got.HTML, "Company")
	assert.NotContains(t, got.Text, "Company")
}

func TestRenderNewsletter(t *testing.T) {
	r := fixedRenderer()

	got, err := r.RenderNewsletter(NewsletterData{Email: "x@x.com"})
	require.NoError(t, err)

	assert.Equal(t, "New newsletter subscription", got.Subject)
	assert.Contains(t, got.HTML, "mailto:x@x.com")
	assert.Contains(t, got.Text, "Email: x@x.com")
	assert.Contains(t, got.Text, "Mar 14, 2025 12:00 UTC")
}
