package services

import (
	"context"
	"fmt"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
)

// DashboardService aggregates record counts for the admin landing page.
type DashboardService struct {
	studentRepo repositories.IStudentRepository
	teacherRepo repositories.ITeacherRepository
	staffRepo   repositories.IStaffRepository
	contactRepo repositories.IContactRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	studentRepo repositories.IStudentRepository,
	teacherRepo repositories.ITeacherRepository,
	staffRepo repositories.IStaffRepository,
	contactRepo repositories.IContactRepository,
) *DashboardService {
	return &DashboardService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		staffRepo:   staffRepo,
		contactRepo: contactRepo,
	}
}

// Counts gathers the totals across all record stores.
func (s *DashboardService) Counts(ctx context.Context) (*dto.DashboardResponse, error) {
	students, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting students: %w", err)
	}
	teachers, err := s.teacherRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting teachers: %w", err)
	}
	staff, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting staff: %w", err)
	}
	contacts, err := s.contactRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting contact requests: %w", err)
	}

	return &dto.DashboardResponse{
		StudentCount:        students,
		TeacherCount:        teachers,
		StaffCount:          staff,
		ContactRequestCount: contacts,
	}, nil
}
