package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/middleware"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
)

// AuthController handles session and password reset endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates an admin and sets the session cookie
// @Summary Admin login
// @Description Verifies role, employee ID, email and password together, then sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	employee, token, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(auth.SessionCookieName, token, c.authService.SessionTTLSeconds(), "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.LoginResponse{
		EmployeeID: employee.EmployeeID,
		Name:       employee.Name,
		Role:       auth.RoleHSD,
	}))
}

// Logout clears the session cookie
// @Summary Admin logout
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Logged out"}))
}

// ForgotPassword sends a password reset link
// @Summary Request password reset
// @Description Sends a reset link to the account email. The response is identical whether or not the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account identification"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Reset link sent if the account exists"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.ForgotPassword(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{
		Message: "If the account exists, a reset link has been sent",
	}))
}

// ResetPassword sets a new password using an emailed token
// @Summary Reset password
// @Description Validates the emailed token and stores the new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Password updated"
// @Failure 400 {object} dto.APIResponse "Password too short or mismatch"
// @Failure 401 {object} dto.APIResponse "Invalid or expired token"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.ResetPassword(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Password updated"}))
}
