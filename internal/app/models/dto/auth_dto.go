package dto

// LoginRequest is the admin console login form.
type LoginRequest struct {
	Role       string `json:"role" binding:"required" example:"hsd"`
	EmployeeID string `json:"employeeId" binding:"required" example:"DICT001"`
	Email      string `json:"email" binding:"required,email" example:"asha@uap.academy"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse reports who logged in; the session itself travels in a cookie.
type LoginResponse struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

// ForgotPasswordRequest asks for a reset link.
type ForgotPasswordRequest struct {
	Role       string `json:"role" example:"hsd"`
	EmployeeID string `json:"employeeId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password using an emailed token.
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
