package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

// HandleAPIError maps sentinel errors onto the standard error envelope.
// Custom errors keep their message and details; everything unrecognized
// collapses to a 500 without leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details interface{}
	if errors.As(err, &custom) {
		message = custom.Error()
		if custom.Details != nil {
			details = custom.Details
		}
	}

	respond := func(status int, code dto.ErrorCode, msg string) {
		detail := dto.NewErrorDetail(code, msg)
		if details != nil {
			detail = detail.WithDetails(details)
		}
		c.JSON(status, dto.NewErrorResponse(detail))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(401, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrSessionExpired):
		respond(401, dto.ErrorCodeSessionExpired, "Session expired")
	case errors.Is(err, apperrors.ErrSessionInvalid):
		respond(401, dto.ErrorCodeInvalidSession, "Invalid session")
	case errors.Is(err, apperrors.ErrInvalidResetToken):
		respond(401, dto.ErrorCodeInvalidResetToken, "Invalid or expired reset token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(403, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrEmployeeNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrStaffNotFound),
		errors.Is(err, apperrors.ErrContactRequestNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(404, dto.ErrorCodeResourceNotFound, message)

	case errors.Is(err, apperrors.ErrDuplicateRecord),
		errors.Is(err, apperrors.ErrDuplicateEmployee),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(409, dto.ErrorCodeResourceAlreadyExists, message)

	case errors.Is(err, apperrors.ErrDepartmentFull):
		respond(409, dto.ErrorCodeDepartmentFull, "Department employee pool is exhausted")

	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		respond(400, dto.ErrorCodeUnsupportedFile, "Unsupported file type; upload .csv or .xlsx")
	case errors.Is(err, apperrors.ErrMissingRequiredColumns):
		respond(400, dto.ErrorCodeMissingColumns, message)
	case errors.Is(err, apperrors.ErrMalformedFile):
		respond(400, dto.ErrorCodeValidationFailed, "File could not be parsed")

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidAadhaar),
		errors.Is(err, apperrors.ErrInvalidPAN),
		errors.Is(err, apperrors.ErrInvalidStaffRole),
		errors.Is(err, apperrors.ErrPasswordTooShort),
		errors.Is(err, apperrors.ErrPasswordMismatch),
		errors.Is(err, apperrors.ErrImportDepartmentMissing):
		respond(400, dto.ErrorCodeValidationFailed, message)

	default:
		respond(500, dto.ErrorCodeInternalServer, "Internal server error")
	}
}
