package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
	"github.com/unifiedacademics/uap-backend/internal/pkg/email"
	"github.com/unifiedacademics/uap-backend/internal/pkg/sequence"
)

// TeacherCandidate is a normalized teacher ready for appointment.
type TeacherCandidate struct {
	Name             string
	Email            string
	Phone            *string
	Department       string
	Designation      *string
	SessionStartYear int
	SessionEndYear   int
}

// TeacherService handles teacher records.
type TeacherService struct {
	teacherRepo repositories.ITeacherRepository
	generator   *sequence.Generator
	notifier    email.Notifier
	logger      zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(
	teacherRepo repositories.ITeacherRepository,
	generator *sequence.Generator,
	notifier email.Notifier,
	logger zerolog.Logger,
) *TeacherService {
	return &TeacherService{
		teacherRepo: teacherRepo,
		generator:   generator,
		notifier:    notifier,
		logger:      logger,
	}
}

// Appoint runs the appointment pipeline for one candidate. Clashing field
// labels are returned instead of an error when the candidate duplicates an
// existing record.
func (s *TeacherService) Appoint(ctx context.Context, c TeacherCandidate) (*models.Teacher, []string, error) {
	dupes, err := s.teacherRepo.FindDuplicateFields(ctx, c.Email, strValue(c.Phone))
	if err != nil {
		return nil, nil, fmt.Errorf("duplicate probe failed: %w", err)
	}
	if len(dupes) > 0 {
		return nil, dupes, nil
	}

	registrationNumber, err := s.generator.TeacherRegistrationNumber(ctx)
	if err != nil {
		return nil, nil, err
	}

	plainPassword := auth.InitialPassword(registrationNumber)
	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	department := sequence.NormalizeDepartment(c.Department)
	teacher := &models.Teacher{
		RegistrationNumber: registrationNumber,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Department:         department,
		Designation:        c.Designation,
		SessionStartYear:   c.SessionStartYear,
		SessionEndYear:     c.SessionEndYear,
		Password:           hash,
		IsActive:           true,
		CreatedAt:          time.Now(),
	}

	if err := s.teacherRepo.Insert(ctx, teacher); err != nil {
		return nil, nil, err
	}

	s.notifier.Notify(email.TeacherCredentialsMessage(teacher.Email, teacher.Name, registrationNumber, department, plainPassword))
	s.logger.Info().Str("registrationNumber", registrationNumber).Msg("Teacher appointed")
	return teacher, nil, nil
}

// Create appoints a single teacher from the admin form.
func (s *TeacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	teacher, dupes, err := s.Appoint(ctx, TeacherCandidate{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Department:       req.Department,
		Designation:      req.Designation,
		SessionStartYear: req.SessionStartYear,
		SessionEndYear:   req.SessionEndYear,
	})
	if err != nil {
		return nil, err
	}
	if len(dupes) > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrDuplicateRecord, fmt.Sprintf("duplicate %s", joinFields(dupes))).
			WithDetails(map[string]interface{}{"fields": dupes})
	}
	return teacher, nil
}

// Get retrieves one teacher by registration number.
func (s *TeacherService) Get(ctx context.Context, registrationNumber string) (*models.Teacher, error) {
	return s.teacherRepo.GetByRegistrationNumber(ctx, registrationNumber)
}

// List retrieves teachers matching the filter.
func (s *TeacherService) List(ctx context.Context, filter repositories.TeacherFilter) ([]*models.Teacher, error) {
	return s.teacherRepo.List(ctx, filter)
}

// Update applies the admin edit form to a stored teacher.
func (s *TeacherService) Update(ctx context.Context, registrationNumber string, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		return nil, err
	}

	teacher.Name = req.Name
	teacher.Email = req.Email
	teacher.Phone = req.Phone
	teacher.Designation = req.Designation
	teacher.IsActive = req.IsActive

	if err := s.teacherRepo.Update(ctx, registrationNumber, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// Delete removes a teacher record.
func (s *TeacherService) Delete(ctx context.Context, registrationNumber string) error {
	if err := s.teacherRepo.Delete(ctx, registrationNumber); err != nil {
		return err
	}
	s.logger.Info().Str("registrationNumber", registrationNumber).Msg("Teacher deleted")
	return nil
}
