package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffRole is the non-teaching role a staff member holds.
type StaffRole string

// Known staff roles
const (
	StaffRoleClerk        StaffRole = "clerk"
	StaffRoleLabAssistant StaffRole = "lab_assistant"
	StaffRoleLibrarian    StaffRole = "librarian"
	StaffRoleAccountant   StaffRole = "accountant"
	StaffRoleAttendant    StaffRole = "attendant"
)

// StaffRoles lists every accepted role value.
var StaffRoles = []StaffRole{
	StaffRoleClerk,
	StaffRoleLabAssistant,
	StaffRoleLibrarian,
	StaffRoleAccountant,
	StaffRoleAttendant,
}

// ValidStaffRole reports whether the value names a known role.
func ValidStaffRole(value string) bool {
	for _, role := range StaffRoles {
		if string(role) == value {
			return true
		}
	}
	return false
}

// Staff is stored in the 'staff' collection.
type Staff struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeNumber    string             `bson:"employee_number" json:"employeeNumber" example:"STF25001"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Phone             *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Role              StaffRole          `bson:"role" json:"role"`
	YearsOfExperience int                `bson:"years_of_experience" json:"yearsOfExperience"`
	DateOfJoining     *time.Time         `bson:"date_of_joining,omitempty" json:"dateOfJoining,omitempty"`
	AadhaarNumber     *string            `bson:"aadhaar_number,omitempty" json:"aadhaarNumber,omitempty"`
	PANNumber         *string            `bson:"pan_number,omitempty" json:"panNumber,omitempty"`
	Password          string             `bson:"password_hash" json:"-"`
	IsActive          bool               `bson:"is_active" json:"isActive"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}
