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

// StaffCandidate is a normalized staff member ready for hiring.
type StaffCandidate struct {
	Name              string
	Email             string
	Phone             *string
	Role              models.StaffRole
	YearsOfExperience int
	DateOfJoining     *time.Time
	AadhaarNumber     *string
	PANNumber         *string
}

// StaffService handles non-teaching staff records.
type StaffService struct {
	staffRepo repositories.IStaffRepository
	generator *sequence.Generator
	notifier  email.Notifier
	logger    zerolog.Logger
}

// NewStaffService creates a new StaffService
func NewStaffService(
	staffRepo repositories.IStaffRepository,
	generator *sequence.Generator,
	notifier email.Notifier,
	logger zerolog.Logger,
) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		generator: generator,
		notifier:  notifier,
		logger:    logger,
	}
}

// Hire runs the hiring pipeline for one candidate. Clashing field labels are
// returned instead of an error when the candidate duplicates an existing
// record.
func (s *StaffService) Hire(ctx context.Context, c StaffCandidate) (*models.Staff, []string, error) {
	if !models.ValidStaffRole(string(c.Role)) {
		return nil, nil, apperrors.ErrInvalidStaffRole
	}

	dupes, err := s.staffRepo.FindDuplicateFields(ctx, c.Email, strValue(c.Phone), strValue(c.AadhaarNumber), strValue(c.PANNumber))
	if err != nil {
		return nil, nil, fmt.Errorf("duplicate probe failed: %w", err)
	}
	if len(dupes) > 0 {
		return nil, dupes, nil
	}

	employeeNumber, err := s.generator.StaffEmployeeNumber(ctx)
	if err != nil {
		return nil, nil, err
	}

	plainPassword := auth.InitialPassword(employeeNumber)
	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.Staff{
		EmployeeNumber:    employeeNumber,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		Role:              c.Role,
		YearsOfExperience: c.YearsOfExperience,
		DateOfJoining:     c.DateOfJoining,
		AadhaarNumber:     c.AadhaarNumber,
		PANNumber:         c.PANNumber,
		Password:          hash,
		IsActive:          true,
		CreatedAt:         time.Now(),
	}

	if err := s.staffRepo.Insert(ctx, staff); err != nil {
		return nil, nil, err
	}

	s.notifier.Notify(email.StaffCredentialsMessage(staff.Email, staff.Name, employeeNumber, string(staff.Role), plainPassword))
	s.logger.Info().Str("employeeNumber", employeeNumber).Msg("Staff member hired")
	return staff, nil, nil
}

// Create hires a single staff member from the admin form.
func (s *StaffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*models.Staff, error) {
	candidate := StaffCandidate{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Role:              models.StaffRole(req.Role),
		YearsOfExperience: req.YearsOfExperience,
		AadhaarNumber:     req.AadhaarNumber,
		PANNumber:         req.PANNumber,
	}
	if req.DateOfJoining != nil {
		candidate.DateOfJoining = parseOptionalDate(*req.DateOfJoining)
	}

	staff, dupes, err := s.Hire(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if len(dupes) > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrDuplicateRecord, fmt.Sprintf("duplicate %s", joinFields(dupes))).
			WithDetails(map[string]interface{}{"fields": dupes})
	}
	return staff, nil
}

// Get retrieves one staff member by employee number.
func (s *StaffService) Get(ctx context.Context, employeeNumber string) (*models.Staff, error) {
	return s.staffRepo.GetByEmployeeNumber(ctx, employeeNumber)
}

// List retrieves staff matching the filter.
func (s *StaffService) List(ctx context.Context, filter repositories.StaffFilter) ([]*models.Staff, error) {
	return s.staffRepo.List(ctx, filter)
}

// Update applies the admin edit form to a stored staff member.
func (s *StaffService) Update(ctx context.Context, employeeNumber string, req dto.UpdateStaffRequest) (*models.Staff, error) {
	if !models.ValidStaffRole(req.Role) {
		return nil, apperrors.ErrInvalidStaffRole
	}

	staff, err := s.staffRepo.GetByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		return nil, err
	}

	staff.Name = req.Name
	staff.Email = req.Email
	staff.Phone = req.Phone
	staff.Role = models.StaffRole(req.Role)
	staff.YearsOfExperience = req.YearsOfExperience
	staff.IsActive = req.IsActive

	if err := s.staffRepo.Update(ctx, employeeNumber, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Delete removes a staff record.
func (s *StaffService) Delete(ctx context.Context, employeeNumber string) error {
	if err := s.staffRepo.Delete(ctx, employeeNumber); err != nil {
		return err
	}
	s.logger.Info().Str("employeeNumber", employeeNumber).Msg("Staff member deleted")
	return nil
}
