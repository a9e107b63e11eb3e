package services

import (
	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
	"github.com/unifiedacademics/uap-backend/internal/pkg/email"
	"github.com/unifiedacademics/uap-backend/internal/pkg/sequence"
)

// Services holds all the service instances
type Services struct {
	AuthService      *AuthService
	EmployeeService  *EmployeeService
	StudentService   *StudentService
	TeacherService   *TeacherService
	StaffService     *StaffService
	ContactService   *ContactService
	DashboardService *DashboardService
	ImportService    *ImportService
	ExportService    *ExportService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	sessions *auth.SessionService,
	notifier email.Notifier,
	baseURL string,
	logger zerolog.Logger,
) *Services {
	generator := sequence.NewGenerator(repos.CounterRepository)

	studentService := NewStudentService(repos.StudentRepository, generator, notifier, logger)
	teacherService := NewTeacherService(repos.TeacherRepository, generator, notifier, logger)
	staffService := NewStaffService(repos.StaffRepository, generator, notifier, logger)

	return &Services{
		AuthService:      NewAuthService(repos.EmployeeRepository, sessions, notifier, baseURL, logger),
		EmployeeService:  NewEmployeeService(repos.EmployeeRepository, notifier, logger),
		StudentService:   studentService,
		TeacherService:   teacherService,
		StaffService:     staffService,
		ContactService:   NewContactService(repos.ContactRepository, logger),
		DashboardService: NewDashboardService(repos.StudentRepository, repos.TeacherRepository, repos.StaffRepository, repos.ContactRepository),
		ImportService:    NewImportService(studentService, teacherService, staffService, logger),
		ExportService:    NewExportService(repos.StudentRepository, repos.TeacherRepository, repos.StaffRepository),
	}
}
