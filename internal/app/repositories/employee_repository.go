package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/db"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/dberrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/sequence"
)

const employeeColumns = `
	id, employee_id, password_hash, name, email, contact_number, dob, age,
	department, aadhaar_number, pan_number, profile_photo, date_of_joining,
	address, is_active, created_at, updated_at`

// IEmployeeRepository defines employee database operations
type IEmployeeRepository interface {
	CreateWithGeneratedID(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	GetActiveByEmployeeIDAndEmail(ctx context.Context, employeeID, email string) (*models.Employee, error)
	List(ctx context.Context, department string, includeInactive bool) ([]*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	UpdatePassword(ctx context.Context, employeeID, passwordHash string) error
	Deactivate(ctx context.Context, employeeID string) error
	Reactivate(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
}

// EmployeeRepository handles employee persistence in PostgreSQL.
type EmployeeRepository struct {
	db *db.PostgresDB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(database *db.PostgresDB) *EmployeeRepository {
	return &EmployeeRepository{db: database}
}

// CreateWithGeneratedID assigns the lowest free identifier in the employee's
// department pool and inserts the record, all inside one transaction. The
// department rows are locked for the duration of the scan so two concurrent
// creates cannot claim the same slot. Identifiers freed by hard deletes are
// reissued; identifiers that do not parse as <DEPT><number> are ignored.
func (r *EmployeeRepository) CreateWithGeneratedID(ctx context.Context, employee *models.Employee) error {
	if employee.Department == "" {
		employee.Department = models.DefaultDepartment
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT employee_id FROM employees
			WHERE department = $1
			FOR UPDATE`,
			employee.Department)
		if err != nil {
			return fmt.Errorf("error scanning department pool: %w", err)
		}

		taken := make(map[int64]bool)
		for rows.Next() {
			var existingID string
			if err := rows.Scan(&existingID); err != nil {
				rows.Close()
				return fmt.Errorf("error reading employee id: %w", err)
			}
			n, err := sequence.ParseNumericSuffix(employee.Department, existingID)
			if err != nil {
				continue
			}
			taken[n] = true
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error scanning department pool: %w", err)
		}

		slot := int64(0)
		for i := int64(1); i <= models.DepartmentCapacity; i++ {
			if !taken[i] {
				slot = i
				break
			}
		}
		if slot == 0 {
			return apperrors.ErrDepartmentFull
		}
		employee.EmployeeID = fmt.Sprintf("%s%03d", employee.Department, slot)

		err = tx.QueryRow(ctx, `
			INSERT INTO employees (
				employee_id, password_hash, name, email, contact_number, dob, age,
				department, aadhaar_number, pan_number, profile_photo,
				date_of_joining, address, is_active
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id, created_at, updated_at`,
			employee.EmployeeID, employee.Password, employee.Name, employee.Email,
			employee.ContactNumber, employee.DOB, employee.Age, employee.Department,
			employee.AadhaarNumber, employee.PANNumber, employee.ProfilePhoto,
			employee.DateOfJoining, employee.Address, employee.IsActive).
			Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)

		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateEmployee
			}
			return fmt.Errorf("error creating employee: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an employee by row ID, as carried in reset tokens.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByEmployeeID retrieves an employee by the human-facing identifier
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	return r.getOne(ctx, `WHERE employee_id = $1`, employeeID)
}

// GetActiveByEmployeeIDAndEmail retrieves an active employee matching both
// identifier and email, as required at login.
func (r *EmployeeRepository) GetActiveByEmployeeIDAndEmail(ctx context.Context, employeeID, email string) (*models.Employee, error) {
	return r.getOne(ctx, `WHERE employee_id = $1 AND email = $2 AND is_active = TRUE`, employeeID, email)
}

func (r *EmployeeRepository) getOne(ctx context.Context, where string, args ...interface{}) (*models.Employee, error) {
	employee := &models.Employee{}
	err := r.db.Pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees `+where, args...).Scan(
		&employee.ID, &employee.EmployeeID, &employee.Password, &employee.Name,
		&employee.Email, &employee.ContactNumber, &employee.DOB, &employee.Age,
		&employee.Department, &employee.AadhaarNumber, &employee.PANNumber,
		&employee.ProfilePhoto, &employee.DateOfJoining, &employee.Address,
		&employee.IsActive, &employee.CreatedAt, &employee.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// List retrieves employees ordered by identifier, optionally restricted to a
// department. Inactive records are included only on request.
func (r *EmployeeRepository) List(ctx context.Context, department string, includeInactive bool) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE TRUE`
	var args []interface{}
	if department != "" {
		args = append(args, department)
		query += fmt.Sprintf(` AND department = $%d`, len(args))
	}
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{}
		err := rows.Scan(
			&employee.ID, &employee.EmployeeID, &employee.Password, &employee.Name,
			&employee.Email, &employee.ContactNumber, &employee.DOB, &employee.Age,
			&employee.Department, &employee.AadhaarNumber, &employee.PANNumber,
			&employee.ProfilePhoto, &employee.DateOfJoining, &employee.Address,
			&employee.IsActive, &employee.CreatedAt, &employee.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error reading employee row: %w", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].EmployeeID < employees[j].EmployeeID
	})
	return employees, nil
}

// Update overwrites the mutable fields of an employee record.
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE employees
		SET name = $1, email = $2, contact_number = $3, dob = $4, age = $5,
		    aadhaar_number = $6, pan_number = $7, profile_photo = $8,
		    date_of_joining = $9, address = $10, is_active = $11,
		    updated_at = NOW()
		WHERE employee_id = $12`,
		employee.Name, employee.Email, employee.ContactNumber, employee.DOB,
		employee.Age, employee.AadhaarNumber, employee.PANNumber,
		employee.ProfilePhoto, employee.DateOfJoining, employee.Address,
		employee.IsActive, employee.EmployeeID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateEmployee
		}
		return fmt.Errorf("error updating employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *EmployeeRepository) UpdatePassword(ctx context.Context, employeeID, passwordHash string) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE employees
		SET password_hash = $1, updated_at = NOW()
		WHERE employee_id = $2`,
		passwordHash, employeeID)

	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

// Deactivate soft-deletes an employee. The identifier stays claimed so the
// record can be restored with its history intact.
func (r *EmployeeRepository) Deactivate(ctx context.Context, employeeID string) error {
	return r.setActive(ctx, employeeID, false)
}

// Reactivate restores a soft-deleted employee.
func (r *EmployeeRepository) Reactivate(ctx context.Context, employeeID string) error {
	return r.setActive(ctx, employeeID, true)
}

func (r *EmployeeRepository) setActive(ctx context.Context, employeeID string, active bool) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE employees
		SET is_active = $1, updated_at = NOW()
		WHERE employee_id = $2`,
		active, employeeID)

	if err != nil {
		return fmt.Errorf("error changing employee active state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

// Count reports how many employee rows exist, active or not.
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}
	return count, nil
}
