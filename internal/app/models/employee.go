package models

import (
	"time"
)

// DefaultDepartment is the department the admin console manages.
const DefaultDepartment = "DICT"

// DepartmentCapacity caps how many employee IDs exist per department pool.
const DepartmentCapacity = 10

// EmployeeIDPrefix prefixes generated employee identifiers (DICT001..DICT010).
const EmployeeIDPrefix = "DICT"

// Employee defines the employee model based on the 'employees' table
type Employee struct {
	ID            int64      `json:"id" db:"id" example:"1"`                                // Row identifier
	EmployeeID    string     `json:"employeeId" db:"employee_id" example:"DICT001"`         // Generated human-facing identifier
	Password      string     `json:"-" db:"password_hash"`                                  // Hashed password (excluded from JSON)
	Name          string     `json:"name" db:"name" example:"Asha Verma"`                   // Full name
	Email         string     `json:"email" db:"email" example:"asha@uap.academy"`           // Unique email address
	ContactNumber string     `json:"contactNumber" db:"contact_number"`                     // Phone number
	DOB           time.Time  `json:"dob" db:"dob"`                                          // Date of birth
	Age           int        `json:"age" db:"age"`                                          // Whole years, recomputed whenever DOB changes
	Department    string     `json:"department" db:"department" example:"DICT"`             // Department pool the ID was issued from
	AadhaarNumber string     `json:"aadhaarNumber" db:"aadhaar_number"`                     // 12-digit national identifier, unique
	PANNumber     string     `json:"panNumber" db:"pan_number"`                             // Tax identifier, unique
	ProfilePhoto  *string    `json:"profilePhoto,omitempty" db:"profile_photo"`             // Optional photo reference
	DateOfJoining time.Time  `json:"dateOfJoining" db:"date_of_joining"`                    // Joining date
	Address       string     `json:"address" db:"address"`                                  // Postal address
	IsActive      bool       `json:"isActive" db:"is_active" example:"true"`                // Soft-delete flag
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`                             // Creation timestamp
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`                             // Last update timestamp
}
