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
	"github.com/unifiedacademics/uap-backend/internal/pkg/validation"
)

const employeePasswordLength = 10

// EmployeeService handles department employee records.
type EmployeeService struct {
	employeeRepo repositories.IEmployeeRepository
	notifier     email.Notifier
	logger       zerolog.Logger
	now          func() time.Time
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repositories.IEmployeeRepository, notifier email.Notifier, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// Create validates the form, assigns the next free department identifier and
// stores the record with a freshly generated password. The plaintext password
// leaves the system only inside the credentials email.
func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	if !validation.ValidAadhaar(req.AadhaarNumber) {
		return nil, apperrors.ErrInvalidAadhaar
	}
	if !validation.ValidPAN(req.PANNumber, validation.SurnameInitial(req.Name)) {
		return nil, apperrors.ErrInvalidPAN
	}

	dob, err := helpers.ParseDate(req.DOB)
	if err != nil {
		return nil, apperrors.NewValidationError("date of birth must be formatted YYYY-MM-DD")
	}
	doj, err := helpers.ParseDate(req.DateOfJoining)
	if err != nil {
		return nil, apperrors.NewValidationError("date of joining must be formatted YYYY-MM-DD")
	}

	plainPassword, err := auth.GenerateRandomPassword(employeePasswordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		Password:      hash,
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		DOB:           dob,
		Age:           helpers.Age(dob, s.now()),
		Department:    req.Department,
		AadhaarNumber: req.AadhaarNumber,
		PANNumber:     req.PANNumber,
		ProfilePhoto:  req.ProfilePhoto,
		DateOfJoining: doj,
		Address:       req.Address,
		IsActive:      true,
	}

	if err := s.employeeRepo.CreateWithGeneratedID(ctx, employee); err != nil {
		return nil, err
	}

	s.notifier.Notify(email.EmployeeCredentialsMessage(employee.Email, employee.Name, employee.EmployeeID, plainPassword))
	s.logger.Info().Str("employeeId", employee.EmployeeID).Msg("Employee created")
	return employee, nil
}

// Get retrieves one employee by identifier.
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	return s.employeeRepo.GetByEmployeeID(ctx, employeeID)
}

// List retrieves employees, optionally filtered by department.
func (s *EmployeeService) List(ctx context.Context, department string, includeInactive bool) ([]*models.Employee, error) {
	return s.employeeRepo.List(ctx, department, includeInactive)
}

// Update applies the non-nil fields of the request onto the stored record.
// Identity documents are re-validated when supplied; age follows DOB.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.ContactNumber != nil {
		employee.ContactNumber = *req.ContactNumber
	}
	if req.DOB != nil {
		dob, err := helpers.ParseDate(*req.DOB)
		if err != nil {
			return nil, apperrors.NewValidationError("date of birth must be formatted YYYY-MM-DD")
		}
		employee.DOB = dob
		employee.Age = helpers.Age(dob, s.now())
	}
	if req.AadhaarNumber != nil {
		if !validation.ValidAadhaar(*req.AadhaarNumber) {
			return nil, apperrors.ErrInvalidAadhaar
		}
		employee.AadhaarNumber = *req.AadhaarNumber
	}
	if req.PANNumber != nil {
		if !validation.ValidPAN(*req.PANNumber, validation.SurnameInitial(employee.Name)) {
			return nil, apperrors.ErrInvalidPAN
		}
		employee.PANNumber = *req.PANNumber
	}
	if req.ProfilePhoto != nil {
		employee.ProfilePhoto = req.ProfilePhoto
	}
	if req.DateOfJoining != nil {
		doj, err := helpers.ParseDate(*req.DateOfJoining)
		if err != nil {
			return nil, apperrors.NewValidationError("date of joining must be formatted YYYY-MM-DD")
		}
		employee.DateOfJoining = doj
	}
	if req.Address != nil {
		employee.Address = *req.Address
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Deactivate soft-deletes an employee; the identifier stays claimed.
func (s *EmployeeService) Deactivate(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.Deactivate(ctx, employeeID); err != nil {
		return err
	}
	s.logger.Info().Str("employeeId", employeeID).Msg("Employee deactivated")
	return nil
}

// Reactivate restores a soft-deleted employee.
func (s *EmployeeService) Reactivate(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.Reactivate(ctx, employeeID); err != nil {
		return err
	}
	s.logger.Info().Str("employeeId", employeeID).Msg("Employee reactivated")
	return nil
}
