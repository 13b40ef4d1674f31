package notify

import (
	"context"
	"fmt"

	"github.com/hke-expeditions/trip-backend/internal/leads"
	"github.com/hke-expeditions/trip-backend/pkg/logging"
)

// Service sends new-lead notifications to the sales team.
type Service struct {
	email      EmailSender
	recipients []string
	logger     *logging.Logger
}

// NewService creates a notification service for the given recipient list.
func NewService(email EmailSender, recipients []string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:      email,
		recipients: recipients,
		logger:     logger,
	}
}

// NotifyNewLead emails each configured recipient about a stored lead.
// A partial delivery failure is reported but never reaches the lead
// submitter.
func (s *Service) NotifyNewLead(ctx context.Context, rec *leads.Record) error {
	if s.email == nil || len(s.recipients) == 0 {
		return nil
	}

	name := rec.Name
	if name == "" {
		name = "Unknown"
	}

	subject := fmt.Sprintf("New Lead - %s", name)
	body := fmt.Sprintf(`A new lead has come in!

Name: %s
Phone: %s
Email: %s
Destination: %s
Travel Dates: %s to %s
Days: %s
Travellers: %s
Package: %s
Source: %s
Message: %s

Submitted: %s`,
		rec.Name, rec.Phone, rec.Email, rec.State,
		rec.StartDate, rec.EndDate, rec.Days, rec.Travellers,
		rec.Package, rec.Source, rec.Message, rec.Timestamp)

	var failed int
	for _, recipient := range s.recipients {
		msg := EmailMessage{
			To:      recipient,
			Subject: subject,
			Body:    body,
		}
		if err := s.email.Send(ctx, msg); err != nil {
			s.logger.Error("notify: failed to send new-lead email", "error", err, "to", recipient)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("notify: %d notification(s) failed", failed)
	}
	return nil
}

var _ leads.Notifier = (*Service)(nil)
