package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidAadhaar   = errors.New("invalid aadhaar number")
	ErrInvalidPAN       = errors.New("invalid PAN number")
	ErrBadRequest       = errors.New("bad request")
)

// Employee errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDuplicateEmployee  = errors.New("employee with one of the unique fields already exists")
	ErrDepartmentFull     = errors.New("department employee pool is exhausted")
)

// Directory (document store) errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrTeacherNotFound        = errors.New("teacher not found")
	ErrStaffNotFound          = errors.New("staff member not found")
	ErrContactRequestNotFound = errors.New("contact request not found")
	ErrDuplicateRecord        = errors.New("record with one of the unique fields already exists")
	ErrInvalidStaffRole       = errors.New("invalid staff role")
)

// Bulk import errors
var (
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrMissingRequiredColumns  = errors.New("file is missing required columns")
	ErrMalformedFile           = errors.New("file could not be parsed")
	ErrMalformedIdentifier     = errors.New("stored identifier does not match the expected shape")
	ErrImportDepartmentMissing = errors.New("department and session years are required")
)

// Password reset errors
var (
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
