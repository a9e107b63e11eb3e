package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

// ContactService handles the public contact form and its admin triage.
type ContactService struct {
	contactRepo repositories.IContactRepository
	logger      zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.IContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{contactRepo: contactRepo, logger: logger}
}

// Submit stores a new contact request from the public form.
func (s *ContactService) Submit(ctx context.Context, form dto.ContactRequestForm) (*models.ContactRequest, error) {
	request := &models.ContactRequest{
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		Status:    models.ContactStatusNew,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.Insert(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", form.Email).Msg("Contact request received")
	return request, nil
}

// List retrieves contact requests, optionally filtered by status.
func (s *ContactService) List(ctx context.Context, status string) ([]*models.ContactRequest, error) {
	if status != "" && !models.ValidContactStatus(status) {
		return nil, apperrors.NewBadRequestError("unknown contact request status")
	}
	return s.contactRepo.List(ctx, status)
}

// UpdateStatus moves a contact request through triage. The message body is
// never editable.
func (s *ContactService) UpdateStatus(ctx context.Context, id, status string) (*models.ContactRequest, error) {
	if !models.ValidContactStatus(status) {
		return nil, apperrors.NewBadRequestError("unknown contact request status")
	}
	if err := s.contactRepo.UpdateStatus(ctx, id, models.ContactStatus(status)); err != nil {
		return nil, err
	}
	return s.contactRepo.GetByID(ctx, id)
}

// Delete removes a contact request.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.contactRepo.Delete(ctx, id)
}
