package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
)

const (
	FromName                    = "Vanutsav Agro Tourism"
	BookingConfirmationTemplate = "booking_confirmation.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, email string, data any) error
}

// Rendered is a template executed into its "subject" and "body" blocks.
type Rendered struct {
	Subject string
	Body    string
}

// templates holds each embedded file parsed on its own, keyed by file name,
// so every file can define its own "subject" and "body" blocks.
var templates = mustParseTemplates(FS)

func mustParseTemplates(fsys fs.FS) map[string]*template.Template {
	files, err := fs.Glob(fsys, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}

	parsed := make(map[string]*template.Template, len(files))
	for _, file := range files {
		parsed[path.Base(file)] = template.Must(template.ParseFS(fsys, file))
	}
	return parsed
}

func Render(templateFile string, data any) (Rendered, error) {
	tmpl, ok := templates[templateFile]
	if !ok {
		return Rendered{}, fmt.Errorf("unknown template %q", templateFile)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return Rendered{}, fmt.Errorf("render subject: %w", err)
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return Rendered{}, fmt.Errorf("render body: %w", err)
	}

	return Rendered{Subject: subject.String(), Body: body.String()}, nil
}
