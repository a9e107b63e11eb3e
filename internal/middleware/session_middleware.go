package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
)

// Context keys set by the session middleware
const (
	ContextEmployeeID = "employeeId"
	ContextName       = "name"
	ContextRole       = "role"
)

// SessionMiddleware gates the admin surface behind the session cookie.
type SessionMiddleware struct {
	authService *services.AuthService
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(authService *services.AuthService) *SessionMiddleware {
	return &SessionMiddleware{authService: authService}
}

// RequireSession validates the session cookie and the admin role, then puts
// the caller's identity on the request context.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
			return
		}

		claims, err := m.authService.ValidateSession(token)
		if err != nil {
			switch err {
			case apperrors.ErrSessionExpired:
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
					dto.NewErrorDetail(dto.ErrorCodeSessionExpired, "Session expired")))
			case apperrors.ErrPermissionDenied:
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
					dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
					dto.NewErrorDetail(dto.ErrorCodeInvalidSession, "Invalid session")))
			}
			return
		}

		c.Set(ContextEmployeeID, claims.EmployeeID)
		c.Set(ContextName, claims.Name)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
