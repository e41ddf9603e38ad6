package email

import (
	"context"
	"fmt"
)

// ContactNotification is the data rendered into the contact notification email.
type ContactNotification struct {
	ContactID   int64
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt string
}

// SendContactNotification tells the site owner about a new contact message.
// Replying to the email goes straight to the sender.
func (c *Client) SendContactNotification(ctx context.Context, to string, n ContactNotification) error {
	subject := "New contact message"
	if n.Subject != "" {
		subject = fmt.Sprintf("New contact message: %s", n.Subject)
	}

	return c.Send(ctx, Message{
		To:       to,
		ReplyTo:  n.Email,
		Subject:  subject,
		Template: TemplateContactNotification,
		Data:     n,
	})
}
