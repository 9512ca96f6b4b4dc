package mailer

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingView struct {
	PackageName string
	Adults      int
	Kids        int
	Guests      int
	Amount      string
}

func TestRenderBookingConfirmation(t *testing.T) {
	out, err := Render(BookingConfirmationTemplate, bookingView{
		PackageName: "Farm Stay",
		Adults:      2,
		Kids:        1,
		Guests:      3,
		Amount:      "1500",
	})
	require.NoError(t, err)

	assert.Equal(t, "Booking Confirmation ✔", out.Subject)
	assert.Contains(t, out.Body, "<b>Package:</b> Farm Stay")
	assert.Contains(t, out.Body, "<b>Adults:</b> 2")
	assert.Contains(t, out.Body, "<b>Kids:</b> 1")
	assert.Contains(t, out.Body, "<b>Total Guests:</b> 3")
	assert.Contains(t, out.Body, "<b>Amount:</b> ₹1500")
}

func TestRenderEscapesPackageName(t *testing.T) {
	out, err := Render(BookingConfirmationTemplate, bookingView{PackageName: "<script>x</script>"})
	require.NoError(t, err)

	assert.NotContains(t, out.Body, "<script>")
	assert.Contains(t, out.Body, "&lt;script&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestTemplatesParsedOnce(t *testing.T) {
	require.Contains(t, templates, BookingConfirmationTemplate)
	parsed := templates[BookingConfirmationTemplate]

	for i := 0; i < 3; i++ {
		_, err := Render(BookingConfirmationTemplate, bookingView{PackageName: "Farm Stay"})
		require.NoError(t, err)
	}
	assert.Same(t, parsed, templates[BookingConfirmationTemplate])
}

func TestParseTemplatesKeepsBlocksPerFile(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/a.tmpl": {Data: []byte(`{{define "subject"}}A{{end}}{{define "body"}}a{{end}}`)},
		"templates/b.tmpl": {Data: []byte(`{{define "subject"}}B{{end}}{{define "body"}}b{{end}}`)},
	}
	parsed := mustParseTemplates(fsys)
	require.Len(t, parsed, 2)

	subject := new(bytes.Buffer)
	require.NoError(t, parsed["a.tmpl"].ExecuteTemplate(subject, "subject", nil))
	assert.Equal(t, "A", subject.String())

	subject.Reset()
	require.NoError(t, parsed["b.tmpl"].ExecuteTemplate(subject, "subject", nil))
	assert.Equal(t, "B", subject.String())
}

func TestSMTPClientMessageHeaders(t *testing.T) {
	c, err := NewSMTPClient("smtp.example.com", 587, "bookings@example.com", "app-pass", "", time.Second)
	require.NoError(t, err)

	msg, err := c.message(BookingConfirmationTemplate, "a@b.com", bookingView{PackageName: "Farm Stay"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a@b.com"}, msg.GetHeader("To"))
	from := msg.GetHeader("From")
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "bookings@example.com")
	assert.Contains(t, from[0], FromName)

	buf := new(bytes.Buffer)
	_, err = msg.WriteTo(buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Type: text/html")
}

func TestNewSMTPClientRequiresCredentials(t *testing.T) {
	_, err := NewSMTPClient("smtp.example.com", 587, "", "", "", time.Second)
	assert.Error(t, err)
}
