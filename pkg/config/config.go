package config

import "github.com/sirupsen/logrus"

// Mail providers understood by the waitlist service.
const (
	MailProviderResend = "resend"
	MailProviderSES    = "ses"
	MailProviderLog    = "log"
)

// Environment variables read on Load.
const (
	EnvResendAPIKey = "RESEND_API_KEY"
	EnvListen       = "LOCADDO_LISTEN"
	EnvMailProvider = "LOCADDO_MAIL_PROVIDER"
)

type Config interface {
	Listen() string
	MailProvider() string
	AWSRegion() string
	WelcomeFrom() string
	NotifyFrom() string
	NotifyTo() string
	AllowedOrigin() string
	Debug() bool
	// ResendAPIKey comes from the environment only and is never saved.
	ResendAPIKey() string

	SetListen(string)
	SetMailProvider(string)
	SetDebug(bool)

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
