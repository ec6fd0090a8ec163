package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rpupo63/corporate-site-backend/config"
	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rs/zerolog/log"
)

const (
	defaultNewsletterInbox = "info@niakazi"
	newsletterSubject      = "New Newsletter Signup - GRI Blog"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type NewsletterService struct {
	sender EmailSender
	inbox  string
	now    func() time.Time
}

// NewNewsletterService forwards signups through Resend when RESEND_API_KEY is set.
// Otherwise signups are only logged.
func NewNewsletterService(cfg map[string]string) *NewsletterService {
	var sender EmailSender
	if apiKey := config.GetString(cfg, "RESEND_API_KEY", ""); apiKey != "" {
		from := config.GetString(cfg, "RESEND_FROM_EMAIL", "GRI Blog <onboarding@resend.dev>")
		sender = NewResendClient(apiKey, from)
	}
	return NewNewsletterServiceWithSender(sender, config.GetString(cfg, "NEWSLETTER_INBOX", defaultNewsletterInbox))
}

func NewNewsletterServiceWithSender(sender EmailSender, inbox string) *NewsletterService {
	if inbox == "" {
		inbox = defaultNewsletterInbox
	}
	return &NewsletterService{sender: sender, inbox: inbox, now: time.Now}
}

// Forwarding reports whether signups leave the process
func (s *NewsletterService) Forwarding() bool {
	return s.sender != nil
}

// Subscribe validates email and passes the signup on to the newsletter inbox.
// Delivery failures are logged and never returned.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewInvalidFieldError("email", "invalid email format")
	}

	logger := log.With().Str("email", email).Str("inbox", s.inbox).Logger()
	if s.sender == nil {
		logger.Info().Msg("Newsletter signup received")
		return nil
	}

	body := fmt.Sprintf(
		"New newsletter subscription received:\n\nEmail: %s\nTimestamp: %s\nSource: GRI Blog Newsletter Popup\n\nPlease add this email to the newsletter mailing list.\n",
		email, s.now().UTC().Format(time.RFC3339),
	)
	if err := s.sender.SendEmail(ctx, newsletterSubject, body, []string{s.inbox}); err != nil {
		logger.Error().Err(err).Msg("Failed to forward newsletter signup")
		return nil
	}
	logger.Info().Msg("Newsletter signup forwarded")
	return nil
}
