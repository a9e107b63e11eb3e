package sequence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

// memoryAllocator mimics the counter store: the base seeds a sequence exactly
// once, every Next moves it forward by one.
type memoryAllocator struct {
	seq map[string]int64
}

func newMemoryAllocator() *memoryAllocator {
	return &memoryAllocator{seq: make(map[string]int64)}
}

func (a *memoryAllocator) Next(_ context.Context, name string, base int64) (int64, error) {
	if _, ok := a.seq[name]; !ok {
		a.seq[name] = base
	}
	a.seq[name]++
	return a.seq[name], nil
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestStudentRegistrationNumberSeedsFromYear(t *testing.T) {
	gen := NewGeneratorAt(newMemoryAllocator(), fixedClock(2025))
	ctx := context.Background()

	first, err := gen.StudentRegistrationNumber(ctx)
	require.NoError(t, err)
	second, err := gen.StudentRegistrationNumber(ctx)
	require.NoError(t, err)

	assert.Equal(t, "UAP25001", first)
	assert.Equal(t, "UAP25002", second)
}

func TestStudentAndTeacherCountersAreIndependent(t *testing.T) {
	gen := NewGeneratorAt(newMemoryAllocator(), fixedClock(2025))
	ctx := context.Background()

	student, err := gen.StudentRegistrationNumber(ctx)
	require.NoError(t, err)
	teacher, err := gen.TeacherRegistrationNumber(ctx)
	require.NoError(t, err)

	// Both sequences start fresh, so the numbers may collide across kinds.
	assert.Equal(t, "UAP25001", student)
	assert.Equal(t, "UAP25001", teacher)
}

func TestStaffEmployeeNumberPrefix(t *testing.T) {
	gen := NewGeneratorAt(newMemoryAllocator(), fixedClock(2026))
	ctx := context.Background()

	number, err := gen.StaffEmployeeNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "STF26001", number)
}

func TestStudentRollNumberBuckets(t *testing.T) {
	gen := NewGeneratorAt(newMemoryAllocator(), fixedClock(2025))
	ctx := context.Background()

	first, err := gen.StudentRollNumber(ctx, "cse", 2025)
	require.NoError(t, err)
	second, err := gen.StudentRollNumber(ctx, "CSE", 2025)
	require.NoError(t, err)
	otherDept, err := gen.StudentRollNumber(ctx, "ECE", 2025)
	require.NoError(t, err)
	otherYear, err := gen.StudentRollNumber(ctx, "CSE", 2026)
	require.NoError(t, err)

	assert.Equal(t, "CSE2025-001", first)
	assert.Equal(t, "CSE2025-002", second)
	assert.Equal(t, "ECE2025-001", otherDept)
	assert.Equal(t, "CSE2026-001", otherYear)
}

func TestNormalizeDepartment(t *testing.T) {
	assert.Equal(t, "CSE", NormalizeDepartment(" cse "))
	assert.Equal(t, "CIVILENG", NormalizeDepartment("Civil Eng"))
}

func TestParseNumericSuffix(t *testing.T) {
	n, err := ParseNumericSuffix("DICT", "DICT007")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = ParseNumericSuffix("DICT", "LEGACY-7")
	assert.ErrorIs(t, err, apperrors.ErrMalformedIdentifier)

	_, err = ParseNumericSuffix("DICT", "DICTabc")
	assert.ErrorIs(t, err, apperrors.ErrMalformedIdentifier)
}
