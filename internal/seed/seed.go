package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/config"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
	"github.com/unifiedacademics/uap-backend/internal/pkg/helpers"
)

// CreateDefaultAdmin seeds the first admin account when the employees table
// is empty, so a fresh deployment has a way in. The seed credentials come
// from configuration and should be rotated after first login.
func CreateDefaultAdmin(ctx context.Context, employeeRepo repositories.IEmployeeRepository, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Auth.SeedAdminEmail == "" || cfg.Auth.SeedAdminSecret == "" {
		lgr.Debug().Msg("No seed admin configured, skipping")
		return nil
	}

	count, err := employeeRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check employee count: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Auth.SeedAdminSecret)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	dob := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	admin := &models.Employee{
		Password:      hash,
		Name:          "Default Administrator",
		Email:         cfg.Auth.SeedAdminEmail,
		ContactNumber: "0000000000",
		DOB:           dob,
		Age:           helpers.Age(dob, time.Now()),
		Department:    models.DefaultDepartment,
		AadhaarNumber: "000000000000",
		PANNumber:     "AAAAA0000A",
		DateOfJoining: time.Now(),
		Address:       "Unified Academic Platform",
		IsActive:      true,
	}

	if err := employeeRepo.CreateWithGeneratedID(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	lgr.Info().Str("employeeId", admin.EmployeeID).Str("email", admin.Email).Msg("Seeded default admin account")
	return nil
}
