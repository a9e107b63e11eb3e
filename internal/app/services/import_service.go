package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/metrics"
	"github.com/unifiedacademics/uap-backend/internal/pkg/tabular"
)

// ImportService drives bulk spreadsheet imports. Parsing, column checks and
// row iteration are shared across kinds; each kind plugs in its required
// columns and a row handler that runs the admission pipeline.
type ImportService struct {
	students *StudentService
	teachers *TeacherService
	staff    *StaffService
	logger   zerolog.Logger
}

// NewImportService creates a new ImportService
func NewImportService(students *StudentService, teachers *TeacherService, staff *StaffService, logger zerolog.Logger) *ImportService {
	return &ImportService{
		students: students,
		teachers: teachers,
		staff:    staff,
		logger:   logger,
	}
}

// rowHandler admits one normalized row. It reports the clashing field labels
// when the row duplicates existing records, or an error when the store or
// identifier allocation failed.
type rowHandler func(ctx context.Context, row tabular.Row) (dupes []string, err error)

// requiredPresent lists the per-row fields whose absence skips the row
// instead of failing the file.
type kindSpec struct {
	kind            string
	requiredColumns []string
	requiredPresent []string
	handle          rowHandler
}

// ImportStudents bulk-admits students from a csv/xlsx upload. The department
// and session years come from the form, not the file.
func (s *ImportService) ImportStudents(ctx context.Context, file io.Reader, filename string, opts dto.StudentImportOptions) (*dto.ImportSummary, error) {
	if opts.Department == "" || opts.SessionStartYear == 0 || opts.SessionEndYear == 0 {
		return nil, apperrors.ErrImportDepartmentMissing
	}

	return s.run(ctx, file, filename, kindSpec{
		kind:            "student",
		requiredColumns: []string{"name", "email"},
		requiredPresent: []string{"name", "email"},
		handle: func(ctx context.Context, row tabular.Row) ([]string, error) {
			candidate := StudentCandidate{
				Name:             row.Get("name"),
				Email:            row.Get("email"),
				Phone:            optional(row.Get("phone")),
				Department:       opts.Department,
				Category:         optional(opts.Category),
				Label:            optional(opts.Label),
				SessionStartYear: opts.SessionStartYear,
				SessionEndYear:   opts.SessionEndYear,
				AadhaarNumber:    optional(row.Get("aadhaar_number")),
				GuardianName:     optional(row.Get("guardian_name")),
				DOB:              parseOptionalDate(row.Get("dob")),
				Address:          optional(row.Get("address")),
			}
			_, dupes, err := s.students.Admit(ctx, candidate)
			return dupes, err
		},
	})
}

// ImportTeachers bulk-appoints teachers from a csv/xlsx upload.
func (s *ImportService) ImportTeachers(ctx context.Context, file io.Reader, filename string, opts dto.TeacherImportOptions) (*dto.ImportSummary, error) {
	if opts.Department == "" || opts.SessionStartYear == 0 || opts.SessionEndYear == 0 {
		return nil, apperrors.ErrImportDepartmentMissing
	}

	return s.run(ctx, file, filename, kindSpec{
		kind:            "teacher",
		requiredColumns: []string{"name", "email"},
		requiredPresent: []string{"name", "email"},
		handle: func(ctx context.Context, row tabular.Row) ([]string, error) {
			candidate := TeacherCandidate{
				Name:             row.Get("name"),
				Email:            row.Get("email"),
				Phone:            optional(row.Get("phone")),
				Department:       opts.Department,
				Designation:      optional(row.Get("designation")),
				SessionStartYear: opts.SessionStartYear,
				SessionEndYear:   opts.SessionEndYear,
			}
			_, dupes, err := s.teachers.Appoint(ctx, candidate)
			return dupes, err
		},
	})
}

// ImportStaff bulk-hires staff from a csv/xlsx upload. The role rides in the
// file, one per row.
func (s *ImportService) ImportStaff(ctx context.Context, file io.Reader, filename string) (*dto.ImportSummary, error) {
	return s.run(ctx, file, filename, kindSpec{
		kind:            "staff",
		requiredColumns: []string{"name", "email", "role"},
		requiredPresent: []string{"name", "email", "role"},
		handle: func(ctx context.Context, row tabular.Row) ([]string, error) {
			role := models.StaffRole(strings.ToLower(row.Get("role")))
			if !models.ValidStaffRole(string(role)) {
				return nil, apperrors.ErrInvalidStaffRole
			}
			candidate := StaffCandidate{
				Name:              row.Get("name"),
				Email:             row.Get("email"),
				Phone:             optional(row.Get("phone")),
				Role:              role,
				YearsOfExperience: coerceInt(row.Get("years_of_experience")),
				DateOfJoining:     parseOptionalDate(row.Get("date_of_joining")),
				AadhaarNumber:     optional(row.Get("aadhaar_number")),
				PANNumber:         optional(row.Get("pan_number")),
			}
			_, dupes, err := s.staff.Hire(ctx, candidate)
			return dupes, err
		},
	})
}

// run parses the upload, enforces the header contract, then walks the rows
// strictly in order. File-level problems reject the whole upload before any
// row is touched; row-level problems are counted and the walk continues.
// Rows already created stay created if a later row aborts the import.
func (s *ImportService) run(ctx context.Context, file io.Reader, filename string, spec kindSpec) (*dto.ImportSummary, error) {
	table, err := tabular.Parse(file, filename)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(spec.requiredColumns...); len(missing) > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingRequiredColumns,
			fmt.Sprintf("file is missing required columns: %s", joinFields(missing))).
			WithDetails(map[string]interface{}{"columns": missing})
	}

	summary := &dto.ImportSummary{}
	for i := 0; i < table.RowCount(); i++ {
		row := table.Row(i)
		name := row.Get("name")
		email := row.Get("email")

		if rowMissesRequired(row, spec.requiredPresent) {
			summary.AddMissing(row.Number, name, email)
			metrics.ImportRowsTotal.WithLabelValues(spec.kind, "missing").Inc()
			continue
		}

		dupes, err := spec.handle(ctx, row)
		switch {
		case err != nil && isRowSkippable(err):
			summary.AddDuplicate(row.Number, name, email, rowSkipReason(err))
			metrics.ImportRowsTotal.WithLabelValues(spec.kind, "duplicate").Inc()
		case err != nil:
			// Identifier allocation or storage failed; everything committed
			// so far stays committed.
			s.logger.Error().Err(err).Int("row", row.Number).Str("kind", spec.kind).Msg("Import aborted")
			return summary, err
		case len(dupes) > 0:
			summary.AddDuplicate(row.Number, name, email, fmt.Sprintf("duplicate %s", joinFields(dupes)))
			metrics.ImportRowsTotal.WithLabelValues(spec.kind, "duplicate").Inc()
		default:
			summary.Created++
			metrics.ImportRowsTotal.WithLabelValues(spec.kind, "created").Inc()
		}
	}

	s.logger.Info().
		Str("kind", spec.kind).
		Int("created", summary.Created).
		Int("skippedMissing", summary.SkippedMissing).
		Int("skippedDuplicate", summary.SkippedDuplicate).
		Msg("Import finished")
	return summary, nil
}

func rowMissesRequired(row tabular.Row, fields []string) bool {
	for _, field := range fields {
		if row.Get(field) == "" {
			return true
		}
	}
	return false
}

// isRowSkippable reports whether a handler error condemns only the row.
// Unique-index races and bad per-row values skip the row; anything else
// aborts the file.
func isRowSkippable(err error) bool {
	return errors.Is(err, apperrors.ErrDuplicateRecord) || errors.Is(err, apperrors.ErrInvalidStaffRole)
}

func rowSkipReason(err error) string {
	if errors.Is(err, apperrors.ErrInvalidStaffRole) {
		return "invalid role"
	}
	return "duplicate record"
}

func coerceInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
