package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
)

// ExportService renders record listings as CSV attachments. Column order is
// fixed so exported files can round-trip through the importer.
type ExportService struct {
	studentRepo repositories.IStudentRepository
	teacherRepo repositories.ITeacherRepository
	staffRepo   repositories.IStaffRepository
}

// NewExportService creates a new ExportService
func NewExportService(
	studentRepo repositories.IStudentRepository,
	teacherRepo repositories.ITeacherRepository,
	staffRepo repositories.IStaffRepository,
) *ExportService {
	return &ExportService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		staffRepo:   staffRepo,
	}
}

var studentExportHeader = []string{
	"registration_number", "roll_number", "name", "email", "phone", "department",
	"category", "label", "session_start_year", "session_end_year",
	"aadhaar_number", "guardian_name", "dob", "address", "is_active",
}

// ExportStudents writes the filtered student list as CSV, ordered by
// registration number.
func (s *ExportService) ExportStudents(ctx context.Context, w io.Writer, filter repositories.StudentFilter) error {
	students, err := s.studentRepo.List(ctx, filter)
	if err != nil {
		return err
	}
	sort.Slice(students, func(i, j int) bool {
		return students[i].RegistrationNumber < students[j].RegistrationNumber
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(studentExportHeader); err != nil {
		return fmt.Errorf("error writing export header: %w", err)
	}
	for _, st := range students {
		record := []string{
			st.RegistrationNumber,
			st.RollNumber,
			st.Name,
			st.Email,
			strValue(st.Phone),
			st.Department,
			strValue(st.Category),
			strValue(st.Label),
			strconv.Itoa(st.SessionStartYear),
			strconv.Itoa(st.SessionEndYear),
			strValue(st.AadhaarNumber),
			strValue(st.GuardianName),
			formatDate(st.DOB),
			strValue(st.Address),
			strconv.FormatBool(st.IsActive),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var teacherExportHeader = []string{
	"registration_number", "name", "email", "phone", "department",
	"designation", "session_start_year", "session_end_year", "is_active",
}

// ExportTeachers writes the filtered teacher list as CSV, ordered by
// registration number.
func (s *ExportService) ExportTeachers(ctx context.Context, w io.Writer, filter repositories.TeacherFilter) error {
	teachers, err := s.teacherRepo.List(ctx, filter)
	if err != nil {
		return err
	}
	sort.Slice(teachers, func(i, j int) bool {
		return teachers[i].RegistrationNumber < teachers[j].RegistrationNumber
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(teacherExportHeader); err != nil {
		return fmt.Errorf("error writing export header: %w", err)
	}
	for _, t := range teachers {
		record := []string{
			t.RegistrationNumber,
			t.Name,
			t.Email,
			strValue(t.Phone),
			t.Department,
			strValue(t.Designation),
			strconv.Itoa(t.SessionStartYear),
			strconv.Itoa(t.SessionEndYear),
			strconv.FormatBool(t.IsActive),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var staffExportHeader = []string{
	"employee_number", "name", "email", "phone", "role",
	"years_of_experience", "date_of_joining", "aadhaar_number", "pan_number", "is_active",
}

// ExportStaff writes the filtered staff list as CSV, ordered by employee
// number.
func (s *ExportService) ExportStaff(ctx context.Context, w io.Writer, filter repositories.StaffFilter) error {
	staff, err := s.staffRepo.List(ctx, filter)
	if err != nil {
		return err
	}
	sort.Slice(staff, func(i, j int) bool {
		return staff[i].EmployeeNumber < staff[j].EmployeeNumber
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(staffExportHeader); err != nil {
		return fmt.Errorf("error writing export header: %w", err)
	}
	for _, m := range staff {
		record := []string{
			m.EmployeeNumber,
			m.Name,
			m.Email,
			strValue(m.Phone),
			string(m.Role),
			strconv.Itoa(m.YearsOfExperience),
			formatDate(m.DateOfJoining),
			strValue(m.AadhaarNumber),
			strValue(m.PANNumber),
			strconv.FormatBool(m.IsActive),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
