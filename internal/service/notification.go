package service

import (
	"context"
	"fmt"

	"github.com/adworks/marketing-backend/internal/config"
	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
	"github.com/adworks/marketing-backend/pkg/mail"
)

// NotificationService composes outbound notification emails and appends
// the email-record log entry after a successful send. Sends are
// synchronous with no retry. A failed send writes no record; a failed
// record after a successful send surfaces the error even though the mail
// already went out.
type NotificationService struct {
	mailer  mail.Mailer
	records repository.IEmailRecordRepository
	cfg     *config.Config
}

func NewNotificationService(cfg *config.Config, mailer mail.Mailer, records repository.IEmailRecordRepository) *NotificationService {
	return &NotificationService{mailer: mailer, records: records, cfg: cfg}
}

// SendSignup notifies about a newsletter signup and logs the send.
func (s *NotificationService) SendSignup(ctx context.Context, email string) error {
	msg := mail.Message{
		From:    s.cfg.Mail.From,
		To:      s.cfg.Mail.NotifyTo,
		Subject: fmt.Sprintf("New Signup from %s", email),
		Body:    fmt.Sprintf("You have a new signup with the email: %s", email),
	}
	return s.sendAndRecord(ctx, email, msg)
}

// SendDownload notifies about a resource download and logs the send.
// asset is the display name of the resource, e.g. "Media-Kit".
func (s *NotificationService) SendDownload(ctx context.Context, email, asset string) error {
	msg := mail.Message{
		From:    s.cfg.Mail.From,
		To:      s.cfg.Mail.NotifyTo,
		Subject: fmt.Sprintf("Download %s PDF : %s", asset, email),
		Body:    fmt.Sprintf("You have a new download the %s pdf with the email: %s", asset, email),
	}
	return s.sendAndRecord(ctx, email, msg)
}

// SendProposal notifies about a contact form submission and logs the send.
func (s *NotificationService) SendProposal(ctx context.Context, entry *model.ContactEntry) error {
	body := fmt.Sprintf(`<h3>Proposal Request from %s - %s</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s %s</p>
<p><strong>Company:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		entry.Name, entry.CompanyName,
		entry.Name, entry.Email,
		entry.CountryCode, entry.Phone,
		entry.CompanyName, entry.Message)

	msg := mail.Message{
		From:    s.cfg.Mail.From,
		To:      s.cfg.Mail.NotifyTo,
		Subject: fmt.Sprintf("Proposal Request from %s - %s", entry.Name, entry.CompanyName),
		Body:    body,
		HTML:    true,
	}
	return s.sendAndRecord(ctx, entry.Email, msg)
}

func (s *NotificationService) sendAndRecord(ctx context.Context, email string, msg mail.Message) error {
	if err := s.mailer.Send(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	if _, err := s.records.Create(ctx, email); err != nil {
		return fmt.Errorf("record email send: %w", err)
	}
	return nil
}
