// Package mailer sends transactional email through a pluggable provider.
package mailer

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/locaddo/locaddo/pkg/config"
)

var (
	// ErrMissingAPIKey is returned by senders whose provider key is not configured.
	ErrMissingAPIKey = errors.New("email provider API key is not set")

	// ErrNoRecipients is returned when a message has no To address.
	ErrNoRecipients = errors.New("message has no recipients")
)

// Message is a single outbound email. HTML is required; Text is optional.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

func (m Message) validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	return nil
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// New builds the sender selected by conf.MailProvider.
func New(ctx context.Context, conf config.Config) (Sender, error) {
	switch p := strings.ToLower(conf.MailProvider()); p {
	case config.MailProviderResend:
		return NewResend(conf.ResendAPIKey()), nil
	case config.MailProviderSES:
		return NewSES(ctx, conf.AWSRegion())
	case config.MailProviderLog:
		return NewLog(nil), nil
	default:
		return nil, pkgerrors.Errorf("unknown mail provider %q", p)
	}
}
