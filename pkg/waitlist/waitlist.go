// Package waitlist handles waitlist signups: it validates the address and
// sends a welcome email to the subscriber and a notification to the team.
// Sends are not retried and nothing is stored.
package waitlist

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/locaddo/locaddo/pkg/config"
	"github.com/locaddo/locaddo/pkg/mailer"
)

// ErrInvalidEmail is returned by Join when the address has no "@".
var ErrInvalidEmail = errors.New("please provide a valid email address")

const (
	welcomeSubject      = "Welcome to the Locaddo Waitlist! 🚀"
	notificationSubject = "🎯 New Waitlist Signup!"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Signup is one waitlist request.
type Signup struct {
	Email     string
	Name      string
	UserAgent string
}

// Receipt records the provider ids of both emails.
type Receipt struct {
	ID             string
	WelcomeID      string
	NotificationID string
	At             time.Time
}

// ValidEmail is the only check applied to addresses: it must contain "@".
func ValidEmail(email string) bool {
	return strings.Contains(strings.TrimSpace(email), "@")
}

type Service struct {
	mu     sync.RWMutex
	sender mailer.Sender
	conf   config.Config
	now    func() time.Time
	logger logrus.FieldLogger
}

func NewService(sender mailer.Sender, conf config.Config) *Service {
	return &Service{
		sender: sender,
		conf:   conf,
		now:    time.Now,
		logger: logrus.StandardLogger(),
	}
}

// SetSender replaces the sender used by later signups.
func (s *Service) SetSender(sender mailer.Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = sender
}

// Sender returns the sender currently in use.
func (s *Service) Sender() mailer.Sender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sender
}

type notificationData struct {
	ID        string
	Email     string
	Name      string
	Time      string
	UserAgent string
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to render %s", name)
	}
	return buf.String(), nil
}

// Join sends the welcome email, then the team notification. It stops at the
// first failure.
func (s *Service) Join(ctx context.Context, su Signup) (Receipt, error) {
	su.Email = strings.TrimSpace(su.Email)
	su.Name = strings.TrimSpace(su.Name)
	if !ValidEmail(su.Email) {
		return Receipt{}, ErrInvalidEmail
	}

	// Both emails of one signup go through the same sender, even if a
	// reload swaps it in between.
	sender := s.Sender()
	r := Receipt{ID: uuid.NewString(), At: s.now()}
	log := s.logger.WithFields(logrus.Fields{"signup": r.ID, "email": su.Email})

	welcome, err := render("welcome.html.tmpl", su)
	if err != nil {
		return Receipt{}, err
	}
	r.WelcomeID, err = sender.Send(ctx, mailer.Message{
		From:    s.conf.WelcomeFrom(),
		To:      []string{su.Email},
		Subject: welcomeSubject,
		HTML:    welcome,
	})
	if err != nil {
		log.Errorf("failed to send welcome email: %v", err)
		return Receipt{}, pkgerrors.Wrap(err, "failed to send welcome email")
	}

	notification, err := render("notification.html.tmpl", notificationData{
		ID:        r.ID,
		Email:     su.Email,
		Name:      su.Name,
		Time:      r.At.Format(time.RFC1123),
		UserAgent: su.UserAgent,
	})
	if err != nil {
		return Receipt{}, err
	}
	r.NotificationID, err = sender.Send(ctx, mailer.Message{
		From:    s.conf.NotifyFrom(),
		To:      []string{s.conf.NotifyTo()},
		ReplyTo: su.Email,
		Subject: notificationSubject,
		HTML:    notification,
	})
	if err != nil {
		log.Errorf("failed to send notification email: %v", err)
		return Receipt{}, pkgerrors.Wrap(err, "failed to send notification email")
	}

	log.WithFields(logrus.Fields{
		"welcomeId":      r.WelcomeID,
		"notificationId": r.NotificationID,
	}).Info("waitlist signup emails sent")

	return r, nil
}
