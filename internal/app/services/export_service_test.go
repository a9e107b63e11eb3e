package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/pkg/tabular"
)

func strptr(s string) *string { return &s }

func TestExportStudentsOrdersByRegistrationNumber(t *testing.T) {
	dob := time.Date(2005, time.April, 18, 0, 0, 0, 0, time.UTC)
	studentRepo := &fakeStudentRepo{students: []*models.Student{
		{
			RegistrationNumber: "UAP25002",
			RollNumber:         "CSE2025-002",
			Name:               "Binod Das",
			Email:              "binod@example.com",
			Department:         "CSE",
			SessionStartYear:   2025,
			SessionEndYear:     2029,
			IsActive:           true,
		},
		{
			RegistrationNumber: "UAP25001",
			RollNumber:         "CSE2025-001",
			Name:               "Asha Rao",
			Email:              "asha@example.com",
			Phone:              strptr("9000000001"),
			Department:         "CSE",
			SessionStartYear:   2025,
			SessionEndYear:     2029,
			DOB:                &dob,
			IsActive:           true,
		},
	}}
	svc := NewExportService(studentRepo, &fakeTeacherRepo{}, &fakeStaffRepo{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportStudents(context.Background(), &buf, repositories.StudentFilter{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, studentExportHeader, records[0])
	assert.Equal(t, "UAP25001", records[1][0])
	assert.Equal(t, "UAP25002", records[2][0])
	assert.Equal(t, "9000000001", records[1][4])
	assert.Equal(t, "2005-04-18", records[1][12])
	assert.Equal(t, "", records[2][4], "absent optional fields export as empty cells")
}

func TestExportedStudentsRoundTripThroughImporter(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: []*models.Student{
		{
			RegistrationNumber: "UAP25001",
			RollNumber:         "CSE2025-001",
			Name:               "Asha Rao",
			Email:              "asha@example.com",
			Department:         "CSE",
			SessionStartYear:   2025,
			SessionEndYear:     2029,
			IsActive:           true,
		},
	}}
	svc := NewExportService(studentRepo, &fakeTeacherRepo{}, &fakeStaffRepo{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportStudents(context.Background(), &buf, repositories.StudentFilter{}))

	table, err := tabular.ParseCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, table.MissingColumns("name", "email"))
	assert.Equal(t, "Asha Rao", table.Row(0).Get("name"))
	assert.Equal(t, "asha@example.com", table.Row(0).Get("email"))
}

func TestExportStaffFormatsRoleAndDate(t *testing.T) {
	doj := time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC)
	staffRepo := &fakeStaffRepo{staff: []*models.Staff{
		{
			EmployeeNumber:    "STF25001",
			Name:              "Gopal Nair",
			Email:             "gopal@example.com",
			Role:              models.StaffRoleClerk,
			YearsOfExperience: 4,
			DateOfJoining:     &doj,
			IsActive:          true,
		},
	}}
	svc := NewExportService(&fakeStudentRepo{}, &fakeTeacherRepo{}, staffRepo)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportStaff(context.Background(), &buf, repositories.StaffFilter{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, staffExportHeader, records[0])
	assert.Equal(t, "clerk", records[1][4])
	assert.Equal(t, "4", records[1][5])
	assert.Equal(t, "2020-07-01", records[1][6])
	assert.Equal(t, "true", records[1][9])
}

func TestExportTeachersHeaderStable(t *testing.T) {
	svc := NewExportService(&fakeStudentRepo{}, &fakeTeacherRepo{}, &fakeStaffRepo{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportTeachers(context.Background(), &buf, repositories.TeacherFilter{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, teacherExportHeader, records[0])
}
