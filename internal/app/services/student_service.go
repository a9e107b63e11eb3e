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
	"github.com/unifiedacademics/uap-backend/internal/pkg/helpers"
	"github.com/unifiedacademics/uap-backend/internal/pkg/sequence"
)

// StudentCandidate is a normalized student ready for admission, before any
// identifier has been assigned. Both the single-add endpoint and the bulk
// importer produce this shape.
type StudentCandidate struct {
	Name             string
	Email            string
	Phone            *string
	Department       string
	Category         *string
	Label            *string
	SessionStartYear int
	SessionEndYear   int
	AadhaarNumber    *string
	GuardianName     *string
	DOB              *time.Time
	Address          *string
}

// StudentService handles student records and the admission pipeline.
type StudentService struct {
	studentRepo repositories.IStudentRepository
	generator   *sequence.Generator
	notifier    email.Notifier
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	generator *sequence.Generator,
	notifier email.Notifier,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		generator:   generator,
		notifier:    notifier,
		logger:      logger,
	}
}

// Admit runs the full admission pipeline for one candidate: duplicate probe,
// identifier allocation, credential issue, insert, credentials email. When
// the candidate collides with existing records the clashing field labels are
// returned and nothing is written.
func (s *StudentService) Admit(ctx context.Context, c StudentCandidate) (*models.Student, []string, error) {
	dupes, err := s.studentRepo.FindDuplicateFields(ctx, c.Email, strValue(c.Phone), strValue(c.AadhaarNumber))
	if err != nil {
		return nil, nil, fmt.Errorf("duplicate probe failed: %w", err)
	}
	if len(dupes) > 0 {
		return nil, dupes, nil
	}

	registrationNumber, err := s.generator.StudentRegistrationNumber(ctx)
	if err != nil {
		return nil, nil, err
	}
	rollNumber, err := s.generator.StudentRollNumber(ctx, c.Department, c.SessionStartYear)
	if err != nil {
		return nil, nil, err
	}

	plainPassword := auth.InitialPassword(registrationNumber)
	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		RegistrationNumber: registrationNumber,
		RollNumber:         rollNumber,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Department:         sequence.NormalizeDepartment(c.Department),
		Category:           c.Category,
		Label:              c.Label,
		SessionStartYear:   c.SessionStartYear,
		SessionEndYear:     c.SessionEndYear,
		AadhaarNumber:      c.AadhaarNumber,
		GuardianName:       c.GuardianName,
		DOB:                c.DOB,
		Address:            c.Address,
		Password:           hash,
		IsActive:           true,
		CreatedAt:          time.Now(),
	}

	if err := s.studentRepo.Insert(ctx, student); err != nil {
		return nil, nil, err
	}

	s.notifier.Notify(email.StudentCredentialsMessage(student.Email, student.Name, registrationNumber, rollNumber, plainPassword))
	s.logger.Info().Str("registrationNumber", registrationNumber).Str("rollNumber", rollNumber).Msg("Student admitted")
	return student, nil, nil
}

// Create admits a single student from the admin form.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	candidate := StudentCandidate{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Department:       req.Department,
		Category:         req.Category,
		Label:            req.Label,
		SessionStartYear: req.SessionStartYear,
		SessionEndYear:   req.SessionEndYear,
		AadhaarNumber:    req.AadhaarNumber,
		GuardianName:     req.GuardianName,
		Address:          req.Address,
	}
	if req.DOB != nil {
		candidate.DOB = helpers.CoerceDate(*req.DOB)
	}

	student, dupes, err := s.Admit(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if len(dupes) > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrDuplicateRecord, fmt.Sprintf("duplicate %s", joinFields(dupes))).
			WithDetails(map[string]interface{}{"fields": dupes})
	}
	return student, nil
}

// Get retrieves one student by registration number.
func (s *StudentService) Get(ctx context.Context, registrationNumber string) (*models.Student, error) {
	return s.studentRepo.GetByRegistrationNumber(ctx, registrationNumber)
}

// List retrieves students matching the filter.
func (s *StudentService) List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, filter)
}

// Update applies the admin edit form to a stored student.
func (s *StudentService) Update(ctx context.Context, registrationNumber string, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.Email = req.Email
	student.Phone = req.Phone
	student.Category = req.Category
	student.Label = req.Label
	student.GuardianName = req.GuardianName
	student.Address = req.Address
	student.IsActive = req.IsActive

	if err := s.studentRepo.Update(ctx, registrationNumber, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student record. The registration number is never reissued;
// counters only move forward.
func (s *StudentService) Delete(ctx context.Context, registrationNumber string) error {
	if err := s.studentRepo.Delete(ctx, registrationNumber); err != nil {
		return err
	}
	s.logger.Info().Str("registrationNumber", registrationNumber).Msg("Student deleted")
	return nil
}
