package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

// Identifier prefixes
const (
	RegistrationPrefix = "UAP"
	StaffPrefix        = "STF"
)

// Counter names. Students and teachers deliberately hold independent counters,
// mirroring the legacy per-collection sequences, so the two registration
// number spaces can overlap.
const (
	CounterStudentRegistration = "student_registration"
	CounterTeacherRegistration = "teacher_registration"
	CounterStaffEmployee       = "staff_employee"
)

// Allocator hands out the next value of a named sequence. The base is applied
// once, when the sequence is first created, so a fresh registration sequence
// starts at <YY>001.
type Allocator interface {
	Next(ctx context.Context, name string, base int64) (int64, error)
}

// Generator formats human-facing identifiers on top of an Allocator.
type Generator struct {
	alloc Allocator
	now   func() time.Time
}

// NewGenerator creates a generator using the wall clock for year seeding.
func NewGenerator(alloc Allocator) *Generator {
	return &Generator{alloc: alloc, now: time.Now}
}

// NewGeneratorAt creates a generator with a fixed clock, for tests.
func NewGeneratorAt(alloc Allocator, now func() time.Time) *Generator {
	return &Generator{alloc: alloc, now: now}
}

// yearBase turns the current year into the seed for year-prefixed sequences:
// 2025 becomes 25000, so the first allocation yields 25001.
func (g *Generator) yearBase() int64 {
	return int64(g.now().Year()%100) * 1000
}

// StudentRegistrationNumber allocates the next UAP##### student number.
func (g *Generator) StudentRegistrationNumber(ctx context.Context) (string, error) {
	n, err := g.alloc.Next(ctx, CounterStudentRegistration, g.yearBase())
	if err != nil {
		return "", fmt.Errorf("allocating student registration number: %w", err)
	}
	return fmt.Sprintf("%s%05d", RegistrationPrefix, n), nil
}

// TeacherRegistrationNumber allocates the next UAP##### teacher number.
func (g *Generator) TeacherRegistrationNumber(ctx context.Context) (string, error) {
	n, err := g.alloc.Next(ctx, CounterTeacherRegistration, g.yearBase())
	if err != nil {
		return "", fmt.Errorf("allocating teacher registration number: %w", err)
	}
	return fmt.Sprintf("%s%05d", RegistrationPrefix, n), nil
}

// StaffEmployeeNumber allocates the next STF##### staff number.
func (g *Generator) StaffEmployeeNumber(ctx context.Context) (string, error) {
	n, err := g.alloc.Next(ctx, CounterStaffEmployee, g.yearBase())
	if err != nil {
		return "", fmt.Errorf("allocating staff employee number: %w", err)
	}
	return fmt.Sprintf("%s%05d", StaffPrefix, n), nil
}

// StudentRollNumber allocates the next roll number inside the
// (department, session start year) bucket, e.g. CSE2025-001.
func (g *Generator) StudentRollNumber(ctx context.Context, department string, sessionStartYear int) (string, error) {
	dept := NormalizeDepartment(department)
	name := RollCounterName(dept, sessionStartYear)
	n, err := g.alloc.Next(ctx, name, 0)
	if err != nil {
		return "", fmt.Errorf("allocating roll number for %s: %w", name, err)
	}
	return fmt.Sprintf("%s%d-%03d", dept, sessionStartYear, n), nil
}

// RollCounterName builds the counter key for a roll number bucket.
func RollCounterName(department string, sessionStartYear int) string {
	return fmt.Sprintf("roll:%s%d", NormalizeDepartment(department), sessionStartYear)
}

// NormalizeDepartment uppercases a department code and strips all spaces.
func NormalizeDepartment(department string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(department)), " ", "")
}

// ParseNumericSuffix extracts the numeric part of a prefixed identifier.
// Returns ErrMalformedIdentifier when the prefix is absent or the remainder is
// not a number, so callers can skip legacy garbage instead of crashing.
func ParseNumericSuffix(prefix, identifier string) (int64, error) {
	if !strings.HasPrefix(identifier, prefix) {
		return 0, fmt.Errorf("%w: %q lacks prefix %q", apperrors.ErrMalformedIdentifier, identifier, prefix)
	}
	n, err := strconv.ParseInt(identifier[len(prefix):], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedIdentifier, identifier)
	}
	return n, nil
}
