package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/email"
	"github.com/unifiedacademics/uap-backend/internal/pkg/sequence"
)

type fakeNotifier struct {
	mu       sync.Mutex
	messages []email.Message
}

func (f *fakeNotifier) Notify(msg email.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
}

func (f *fakeNotifier) sent() []email.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]email.Message(nil), f.messages...)
}

// fakeAllocator behaves like the counter collection: the base seeds a sequence
// once, then every call moves it forward by one.
type fakeAllocator struct {
	seq map[string]int64
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{seq: make(map[string]int64)}
}

func (a *fakeAllocator) Next(_ context.Context, name string, base int64) (int64, error) {
	if _, ok := a.seq[name]; !ok {
		a.seq[name] = base
	}
	a.seq[name]++
	return a.seq[name], nil
}

// testGenerator pins the clock to 2025 so identifiers are predictable.
func testGenerator(alloc sequence.Allocator) *sequence.Generator {
	return sequence.NewGeneratorAt(alloc, func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	})
}

type fakeStudentRepo struct {
	students  []*models.Student
	insertErr error
	// failOnInsert aborts the n-th insert (1-based) with insertErr.
	failOnInsert int
	inserts      int
}

func (f *fakeStudentRepo) Insert(_ context.Context, student *models.Student) error {
	f.inserts++
	if f.failOnInsert > 0 && f.inserts >= f.failOnInsert && f.insertErr != nil {
		return f.insertErr
	}
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentRepo) FindDuplicateFields(_ context.Context, email, phone, aadhaar string) ([]string, error) {
	var dupes []string
	if aadhaar != "" && f.anyStudent(func(s *models.Student) bool { return s.AadhaarNumber != nil && *s.AadhaarNumber == aadhaar }) {
		dupes = append(dupes, "aadhaar number")
	}
	if email != "" && f.anyStudent(func(s *models.Student) bool { return s.Email == email }) {
		dupes = append(dupes, "email")
	}
	if phone != "" && f.anyStudent(func(s *models.Student) bool { return s.Phone != nil && *s.Phone == phone }) {
		dupes = append(dupes, "phone")
	}
	return dupes, nil
}

func (f *fakeStudentRepo) anyStudent(match func(*models.Student) bool) bool {
	for _, s := range f.students {
		if match(s) {
			return true
		}
	}
	return false
}

func (f *fakeStudentRepo) GetByRegistrationNumber(_ context.Context, registrationNumber string) (*models.Student, error) {
	for _, s := range f.students {
		if s.RegistrationNumber == registrationNumber {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) List(_ context.Context, _ repositories.StudentFilter) ([]*models.Student, error) {
	return append([]*models.Student(nil), f.students...), nil
}

func (f *fakeStudentRepo) Update(_ context.Context, registrationNumber string, student *models.Student) error {
	for i, s := range f.students {
		if s.RegistrationNumber == registrationNumber {
			f.students[i] = student
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) Delete(_ context.Context, registrationNumber string) error {
	for i, s := range f.students {
		if s.RegistrationNumber == registrationNumber {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

type fakeTeacherRepo struct {
	teachers []*models.Teacher
}

func (f *fakeTeacherRepo) Insert(_ context.Context, teacher *models.Teacher) error {
	f.teachers = append(f.teachers, teacher)
	return nil
}

func (f *fakeTeacherRepo) FindDuplicateFields(_ context.Context, email, phone string) ([]string, error) {
	var dupes []string
	for _, t := range f.teachers {
		if email != "" && t.Email == email {
			dupes = append(dupes, "email")
			break
		}
	}
	for _, t := range f.teachers {
		if phone != "" && t.Phone != nil && *t.Phone == phone {
			dupes = append(dupes, "phone")
			break
		}
	}
	return dupes, nil
}

func (f *fakeTeacherRepo) GetByRegistrationNumber(_ context.Context, registrationNumber string) (*models.Teacher, error) {
	for _, t := range f.teachers {
		if t.RegistrationNumber == registrationNumber {
			return t, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherRepo) List(_ context.Context, _ repositories.TeacherFilter) ([]*models.Teacher, error) {
	return append([]*models.Teacher(nil), f.teachers...), nil
}

func (f *fakeTeacherRepo) Update(_ context.Context, registrationNumber string, teacher *models.Teacher) error {
	for i, t := range f.teachers {
		if t.RegistrationNumber == registrationNumber {
			f.teachers[i] = teacher
			return nil
		}
	}
	return apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherRepo) Delete(_ context.Context, registrationNumber string) error {
	for i, t := range f.teachers {
		if t.RegistrationNumber == registrationNumber {
			f.teachers = append(f.teachers[:i], f.teachers[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.teachers)), nil
}

type fakeStaffRepo struct {
	staff []*models.Staff
}

func (f *fakeStaffRepo) Insert(_ context.Context, staff *models.Staff) error {
	f.staff = append(f.staff, staff)
	return nil
}

func (f *fakeStaffRepo) FindDuplicateFields(_ context.Context, email, phone, aadhaar, pan string) ([]string, error) {
	var dupes []string
	if aadhaar != "" && f.anyStaff(func(m *models.Staff) bool { return m.AadhaarNumber != nil && *m.AadhaarNumber == aadhaar }) {
		dupes = append(dupes, "aadhaar number")
	}
	if pan != "" && f.anyStaff(func(m *models.Staff) bool { return m.PANNumber != nil && *m.PANNumber == pan }) {
		dupes = append(dupes, "pan number")
	}
	if email != "" && f.anyStaff(func(m *models.Staff) bool { return m.Email == email }) {
		dupes = append(dupes, "email")
	}
	if phone != "" && f.anyStaff(func(m *models.Staff) bool { return m.Phone != nil && *m.Phone == phone }) {
		dupes = append(dupes, "phone")
	}
	return dupes, nil
}

func (f *fakeStaffRepo) anyStaff(match func(*models.Staff) bool) bool {
	for _, m := range f.staff {
		if match(m) {
			return true
		}
	}
	return false
}

func (f *fakeStaffRepo) GetByEmployeeNumber(_ context.Context, employeeNumber string) (*models.Staff, error) {
	for _, m := range f.staff {
		if m.EmployeeNumber == employeeNumber {
			return m, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func (f *fakeStaffRepo) List(_ context.Context, _ repositories.StaffFilter) ([]*models.Staff, error) {
	return append([]*models.Staff(nil), f.staff...), nil
}

func (f *fakeStaffRepo) Update(_ context.Context, employeeNumber string, staff *models.Staff) error {
	for i, m := range f.staff {
		if m.EmployeeNumber == employeeNumber {
			f.staff[i] = staff
			return nil
		}
	}
	return apperrors.ErrStaffNotFound
}

func (f *fakeStaffRepo) Delete(_ context.Context, employeeNumber string) error {
	for i, m := range f.staff {
		if m.EmployeeNumber == employeeNumber {
			f.staff = append(f.staff[:i], f.staff[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStaffNotFound
}

func (f *fakeStaffRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.staff)), nil
}

type fakeEmployeeRepo struct {
	employees []*models.Employee
	nextRowID int64
}

// CreateWithGeneratedID fills the lowest free slot in the department pool,
// matching the row store's allocation contract.
func (f *fakeEmployeeRepo) CreateWithGeneratedID(_ context.Context, employee *models.Employee) error {
	used := make(map[int64]bool)
	for _, e := range f.employees {
		if n, err := sequence.ParseNumericSuffix(employee.Department, e.EmployeeID); err == nil {
			used[n] = true
		}
	}
	assigned := int64(0)
	for n := int64(1); n <= models.DepartmentCapacity; n++ {
		if !used[n] {
			assigned = n
			break
		}
	}
	if assigned == 0 {
		return apperrors.ErrDepartmentFull
	}

	f.nextRowID++
	employee.ID = f.nextRowID
	employee.EmployeeID = fmt.Sprintf("%s%03d", employee.Department, assigned)
	f.employees = append(f.employees, employee)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActiveByEmployeeIDAndEmail(_ context.Context, employeeID, email string) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeID == employeeID && e.Email == email && e.IsActive {
			return e, nil
		}
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, department string, includeInactive bool) ([]*models.Employee, error) {
	var out []*models.Employee
	for _, e := range f.employees {
		if department != "" && e.Department != department {
			continue
		}
		if !includeInactive && !e.IsActive {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, employee *models.Employee) error {
	for i, e := range f.employees {
		if e.EmployeeID == employee.EmployeeID {
			f.employees[i] = employee
			return nil
		}
	}
	return apperrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) UpdatePassword(_ context.Context, employeeID, passwordHash string) error {
	for _, e := range f.employees {
		if e.EmployeeID == employeeID {
			e.Password = passwordHash
			return nil
		}
	}
	return apperrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, employeeID string) error {
	for _, e := range f.employees {
		if e.EmployeeID == employeeID {
			e.IsActive = false
			return nil
		}
	}
	return apperrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Reactivate(_ context.Context, employeeID string) error {
	for _, e := range f.employees {
		if e.EmployeeID == employeeID {
			e.IsActive = true
			return nil
		}
	}
	return apperrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeContactRepo struct {
	requests []*models.ContactRequest
}

func (f *fakeContactRepo) Insert(_ context.Context, request *models.ContactRequest) error {
	request.ID = primitive.NewObjectID()
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id string) (*models.ContactRequest, error) {
	for _, r := range f.requests {
		if r.ID.Hex() == id {
			return r, nil
		}
	}
	return nil, apperrors.ErrContactRequestNotFound
}

func (f *fakeContactRepo) List(_ context.Context, status string) ([]*models.ContactRequest, error) {
	var out []*models.ContactRequest
	for _, r := range f.requests {
		if status != "" && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeContactRepo) UpdateStatus(_ context.Context, id string, status models.ContactStatus) error {
	for _, r := range f.requests {
		if r.ID.Hex() == id {
			r.Status = status
			return nil
		}
	}
	return apperrors.ErrContactRequestNotFound
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.requests {
		if r.ID.Hex() == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrContactRequestNotFound
}

func (f *fakeContactRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.requests)), nil
}
