package dto

// CreateStudentRequest is the single-record student add form. Registration
// and roll numbers are generated server-side.
type CreateStudentRequest struct {
	Name             string  `json:"name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            *string `json:"phone,omitempty"`
	Department       string  `json:"department" binding:"required"`
	Category         *string `json:"category,omitempty"`
	Label            *string `json:"label,omitempty"`
	SessionStartYear int     `json:"sessionStartYear" binding:"required"`
	SessionEndYear   int     `json:"sessionEndYear" binding:"required"`
	AadhaarNumber    *string `json:"aadhaarNumber,omitempty"`
	GuardianName     *string `json:"guardianName,omitempty"`
	DOB              *string `json:"dob,omitempty"`
	Address          *string `json:"address,omitempty"`
}

// UpdateStudentRequest overwrites the fixed mutable field set of a student.
type UpdateStudentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone,omitempty"`
	Category     *string `json:"category,omitempty"`
	Label        *string `json:"label,omitempty"`
	GuardianName *string `json:"guardianName,omitempty"`
	Address      *string `json:"address,omitempty"`
	IsActive     bool    `json:"isActive"`
}

// CreateTeacherRequest is the single-record teacher add form.
type CreateTeacherRequest struct {
	Name             string  `json:"name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            *string `json:"phone,omitempty"`
	Department       string  `json:"department" binding:"required"`
	Designation      *string `json:"designation,omitempty"`
	SessionStartYear int     `json:"sessionStartYear" binding:"required"`
	SessionEndYear   int     `json:"sessionEndYear" binding:"required"`
}

// UpdateTeacherRequest overwrites the fixed mutable field set of a teacher.
type UpdateTeacherRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone,omitempty"`
	Designation *string `json:"designation,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// CreateStaffRequest is the single-record staff add form.
type CreateStaffRequest struct {
	Name              string  `json:"name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone,omitempty"`
	Role              string  `json:"role" binding:"required" example:"librarian"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	DateOfJoining     *string `json:"dateOfJoining,omitempty"`
	AadhaarNumber     *string `json:"aadhaarNumber,omitempty"`
	PANNumber         *string `json:"panNumber,omitempty"`
}

// UpdateStaffRequest overwrites the fixed mutable field set of a staff member.
type UpdateStaffRequest struct {
	Name              string  `json:"name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone,omitempty"`
	Role              string  `json:"role" binding:"required"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	IsActive          bool    `json:"isActive"`
}

// ContactRequestForm is the public contact form payload.
type ContactRequestForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateContactStatusRequest moves a contact request through triage.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required" example:"read"`
}

// DashboardResponse summarizes record counts for the admin landing page.
type DashboardResponse struct {
	StudentCount        int64 `json:"studentCount"`
	TeacherCount        int64 `json:"teacherCount"`
	StaffCount          int64 `json:"staffCount"`
	ContactRequestCount int64 `json:"contactRequestCount"`
}
