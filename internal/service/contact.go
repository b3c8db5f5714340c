package service

import (
	"context"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
)

// ContactService handles contact form submissions and admin listing.
type ContactService struct {
	repo     repository.IContactRepository
	notifier *NotificationService
}

func NewContactService(repo repository.IContactRepository, notifier *NotificationService) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

// Submit validates the entry, stores it, then sends the proposal
// notification. The entry stays stored even when the send fails.
func (s *ContactService) Submit(ctx context.Context, entry *model.ContactEntry) (*model.ContactEntry, error) {
	if entry.Name == "" {
		return nil, missingField("name")
	}
	if entry.Email == "" {
		return nil, missingField("email")
	}
	if entry.Message == "" {
		return nil, missingField("message")
	}
	if entry.Phone == "" {
		return nil, missingField("phone")
	}
	if entry.CompanyName == "" {
		return nil, missingField("companyName")
	}

	stored, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	if err := s.notifier.SendProposal(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// List returns all contact form entries.
func (s *ContactService) List(ctx context.Context) ([]*model.ContactEntry, error) {
	return s.repo.List(ctx)
}
