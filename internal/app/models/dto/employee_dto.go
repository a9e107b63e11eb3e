package dto

// CreateEmployeeRequest is the single-record employee add form. The employee
// ID and initial password are generated server-side.
type CreateEmployeeRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	ContactNumber string  `json:"contactNumber" binding:"required"`
	DOB           string  `json:"dob" binding:"required" example:"1990-04-12"`
	Department    string  `json:"department" example:"DICT"`
	AadhaarNumber string  `json:"aadhaarNumber" binding:"required"`
	PANNumber     string  `json:"panNumber" binding:"required"`
	ProfilePhoto  *string `json:"profilePhoto,omitempty"`
	DateOfJoining string  `json:"dateOfJoining" binding:"required" example:"2024-06-01"`
	Address       string  `json:"address" binding:"required"`
}

// UpdateEmployeeRequest updates any subset of mutable employee fields.
// Nil pointers leave the stored value untouched.
type UpdateEmployeeRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	Department    *string `json:"department,omitempty"`
	AadhaarNumber *string `json:"aadhaarNumber,omitempty"`
	PANNumber     *string `json:"panNumber,omitempty"`
	ProfilePhoto  *string `json:"profilePhoto,omitempty"`
	DateOfJoining *string `json:"dateOfJoining,omitempty"`
	Address       *string `json:"address,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}
