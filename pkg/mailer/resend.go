package mailer

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// Resend sends through the Resend API.
type Resend struct {
	apiKey string
	client *resend.Client
}

// NewResend returns a Resend sender. An empty apiKey is accepted so the
// service can start, but every Send fails with ErrMissingAPIKey.
func NewResend(apiKey string) *Resend {
	return &Resend{
		apiKey: apiKey,
		client: resend.NewClient(apiKey),
	}
}

func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	if r.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if err := msg.validate(); err != nil {
		return "", err
	}

	sent, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", pkgerrors.Wrapf(err, "resend: failed to send %q", msg.Subject)
	}

	return sent.Id, nil
}
