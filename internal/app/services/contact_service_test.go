package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

func TestContactSubmitAndTriage(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Submit(ctx, dto.ContactRequestForm{
		Name:    "Prospective Parent",
		Email:   "parent@example.com",
		Subject: "Admission query",
		Message: "When do admissions open?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, created.Status)
	assert.False(t, created.ID.IsZero())

	updated, err := svc.UpdateStatus(ctx, created.ID.Hex(), "read")
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, updated.Status)

	read, err := svc.List(ctx, "read")
	require.NoError(t, err)
	assert.Len(t, read, 1)

	unresolved, err := svc.List(ctx, "resolved")
	require.NoError(t, err)
	assert.Empty(t, unresolved)
}

func TestContactRejectsUnknownStatus(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.List(ctx, "archived")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.UpdateStatus(ctx, "whatever", "archived")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestContactDeleteUnknown(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, zerolog.Nop())
	err := svc.Delete(context.Background(), "64b0c0ffee0000000000beef")
	assert.ErrorIs(t, err, apperrors.ErrContactRequestNotFound)
}

func TestDashboardCounts(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: []*models.Student{{RegistrationNumber: "UAP25001"}, {RegistrationNumber: "UAP25002"}}}
	teacherRepo := &fakeTeacherRepo{teachers: []*models.Teacher{{RegistrationNumber: "UAP25001"}}}
	staffRepo := &fakeStaffRepo{staff: []*models.Staff{{EmployeeNumber: "STF25001"}}}
	contactRepo := &fakeContactRepo{requests: []*models.ContactRequest{{Status: models.ContactStatusNew}, {Status: models.ContactStatusRead}, {Status: models.ContactStatusResolved}}}

	svc := NewDashboardService(studentRepo, teacherRepo, staffRepo, contactRepo)

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.StudentCount)
	assert.Equal(t, int64(1), counts.TeacherCount)
	assert.Equal(t, int64(1), counts.StaffCount)
	assert.Equal(t, int64(3), counts.ContactRequestCount)
}
