package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

type importFixture struct {
	service     *ImportService
	studentRepo *fakeStudentRepo
	teacherRepo *fakeTeacherRepo
	staffRepo   *fakeStaffRepo
	notifier    *fakeNotifier
}

func newImportFixture() *importFixture {
	studentRepo := &fakeStudentRepo{}
	teacherRepo := &fakeTeacherRepo{}
	staffRepo := &fakeStaffRepo{}
	notifier := &fakeNotifier{}
	gen := testGenerator(newFakeAllocator())
	lgr := zerolog.Nop()

	students := NewStudentService(studentRepo, gen, notifier, lgr)
	teachers := NewTeacherService(teacherRepo, gen, notifier, lgr)
	staff := NewStaffService(staffRepo, gen, notifier, lgr)

	return &importFixture{
		service:     NewImportService(students, teachers, staff, lgr),
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		staffRepo:   staffRepo,
		notifier:    notifier,
	}
}

func studentOpts() dto.StudentImportOptions {
	return dto.StudentImportOptions{
		Department:       "CSE",
		SessionStartYear: 2025,
		SessionEndYear:   2029,
	}
}

func TestImportStudentsSkipsDuplicateRows(t *testing.T) {
	fx := newImportFixture()
	file := strings.NewReader(
		"name,email,phone\n" +
			"Asha Rao,asha@example.com,9000000001\n" +
			"Binod Das,asha@example.com,9000000002\n" +
			"Chitra Iyer,chitra@example.com,9000000003\n")

	summary, err := fx.service.ImportStudents(context.Background(), file, "students.csv", studentOpts())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.SkippedDuplicate)
	assert.Equal(t, 0, summary.SkippedMissing)

	require.Len(t, summary.Skipped, 1)
	skipped := summary.Skipped[0]
	assert.Equal(t, 2, skipped.Row)
	assert.Equal(t, "Binod Das", skipped.Name)
	assert.Equal(t, "asha@example.com", skipped.Email)
	assert.Equal(t, "duplicate email", skipped.Reason)

	require.Len(t, fx.studentRepo.students, 2)
	assert.Equal(t, "UAP25001", fx.studentRepo.students[0].RegistrationNumber)
	assert.Equal(t, "UAP25002", fx.studentRepo.students[1].RegistrationNumber)
	assert.Equal(t, "CSE2025-001", fx.studentRepo.students[0].RollNumber)
	assert.Equal(t, "CSE2025-002", fx.studentRepo.students[1].RollNumber)

	// One credentials email per created record, none for the skipped row.
	assert.Len(t, fx.notifier.sent(), 2)
}

func TestImportStudentsMissingColumnRejectsFile(t *testing.T) {
	fx := newImportFixture()
	file := strings.NewReader("name,phone\nAsha Rao,9000000001\n")

	summary, err := fx.service.ImportStudents(context.Background(), file, "students.csv", studentOpts())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingRequiredColumns)
	assert.Nil(t, summary)

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, []string{"email"}, custom.Details["columns"])

	assert.Empty(t, fx.studentRepo.students, "no rows may be created on a rejected file")
}

func TestImportStudentsCountsMissingFields(t *testing.T) {
	fx := newImportFixture()
	file := strings.NewReader(
		"name,email\n" +
			"Asha Rao,asha@example.com\n" +
			"Binod Das,\n")

	summary, err := fx.service.ImportStudents(context.Background(), file, "students.csv", studentOpts())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.SkippedMissing)
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, dto.SkipReasonMissing, summary.Skipped[0].Reason)
	assert.Equal(t, 2, summary.Skipped[0].Row)
}

func TestImportStudentsRequiresDepartmentAndSession(t *testing.T) {
	fx := newImportFixture()
	file := strings.NewReader("name,email\nAsha Rao,asha@example.com\n")

	_, err := fx.service.ImportStudents(context.Background(), file, "students.csv", dto.StudentImportOptions{})
	assert.ErrorIs(t, err, apperrors.ErrImportDepartmentMissing)
}

func TestImportStudentsUnsupportedFileType(t *testing.T) {
	fx := newImportFixture()

	_, err := fx.service.ImportStudents(context.Background(), strings.NewReader("x"), "students.pdf", studentOpts())
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestImportStudentsAbortKeepsCommittedRows(t *testing.T) {
	fx := newImportFixture()
	storeDown := errors.New("document store unavailable")
	fx.studentRepo.insertErr = storeDown
	fx.studentRepo.failOnInsert = 2

	file := strings.NewReader(
		"name,email\n" +
			"Asha Rao,asha@example.com\n" +
			"Binod Das,binod@example.com\n" +
			"Chitra Iyer,chitra@example.com\n")

	summary, err := fx.service.ImportStudents(context.Background(), file, "students.csv", studentOpts())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeDown)

	// The first row stays committed; the walk stops at the failing row.
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Created)
	assert.Len(t, fx.studentRepo.students, 1)
}

func TestImportTeachersCarriesDesignation(t *testing.T) {
	fx := newImportFixture()
	file := strings.NewReader(
		"name,email,designation\n" +
			"Meera Pillai,meera@example.com,Assistant Professor\n")

	summary, err := fx.service.ImportTeachers(context.Background(), file, "teachers.csv", dto.TeacherImportOptions{
		Department:       "ECE",
		SessionStartYear: 2025,
		SessionEndYear:   2026,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)

	require.Len(t, fx.teacherRepo.teachers, 1)
	teacher := fx.teacherRepo.teachers[0]
	assert.Equal(t, "UAP25001", teacher.RegistrationNumber)
	require.NotNil(t, teacher.Designation)
	assert.Equal(t, "Assistant Professor", *teacher.Designation)
}

func TestImportStaffSkipsInvalidRole(t *testing.T) {
	fx := newImportFixture()
	file := strings.NewReader(
		"name,email,role\n" +
			"Gopal Nair,gopal@example.com,clerk\n" +
			"Hari Menon,hari@example.com,janitor\n")

	summary, err := fx.service.ImportStaff(context.Background(), file, "staff.csv")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.SkippedDuplicate)
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, "invalid role", summary.Skipped[0].Reason)

	require.Len(t, fx.staffRepo.staff, 1)
	assert.Equal(t, "STF25001", fx.staffRepo.staff[0].EmployeeNumber)
}

func TestImportStaffNormalizesRoleCase(t *testing.T) {
	fx := newImportFixture()
	file := strings.NewReader("name,email,role\nGopal Nair,gopal@example.com,Clerk\n")

	summary, err := fx.service.ImportStaff(context.Background(), file, "staff.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
}
