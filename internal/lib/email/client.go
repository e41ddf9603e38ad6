// Package email sends transactional emails through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// DefaultFrom is used when PORTFOLIO_INTEGRATION.EMAIL_FROM is empty.
const DefaultFrom = "Portfolio <onboarding@resend.dev>"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	from := cfg.Integration.EmailFrom
	if from == "" {
		from = DefaultFrom
	}

	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   from,
		logger: logger,
	}
}

// Message is one outgoing email. ReplyTo is optional.
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	Template Template
	Data     any
}

// Render executes the named template with data.
func Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name.file(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// Send renders msg and hands it to Resend.
func (c *Client) Send(ctx context.Context, msg Message) error {
	html, err := Render(msg.Template, msg.Data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    html,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(msg.Template)).
		Msg("email accepted by resend")

	return nil
}
