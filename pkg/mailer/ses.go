package mailer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	pkgerrors "github.com/pkg/errors"
)

const charset = "UTF-8"

// sesAPI is the part of *ses.Client the sender uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SES sends through Amazon SES. Credentials come from the default AWS chain.
type SES struct {
	client sesAPI
}

func NewSES(ctx context.Context, region string) (*SES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to load AWS config for region %s", region)
	}
	return &SES{client: ses.NewFromConfig(cfg)}, nil
}

func (s *SES) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.validate(); err != nil {
		return "", err
	}

	body := &types.Body{
		Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String(charset)},
	}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String(charset)}
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
			Body:    body,
		},
		Source: aws.String(msg.From),
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "ses: failed to send %q", msg.Subject)
	}

	return aws.ToString(out.MessageId), nil
}
