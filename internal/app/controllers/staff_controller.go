package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/middleware"
)

// StaffController handles non-teaching staff endpoints, including bulk import
// and CSV export.
type StaffController struct {
	staffService  *services.StaffService
	importService *services.ImportService
	exportService *services.ExportService
}

// NewStaffController creates a new StaffController
func NewStaffController(
	staffService *services.StaffService,
	importService *services.ImportService,
	exportService *services.ExportService,
) *StaffController {
	return &StaffController{
		staffService:  staffService,
		importService: importService,
		exportService: exportService,
	}
}

func staffFilterFromQuery(ctx *gin.Context) repositories.StaffFilter {
	return repositories.StaffFilter{
		Role:            ctx.Query("role"),
		IncludeInactive: ctx.Query("includeInactive") == "true",
	}
}

// CreateStaff hires a single staff member
// @Summary Create staff member
// @Description Runs the hiring pipeline: role validation, duplicate probe, employee number allocation, credentials email
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Staff information"
// @Success 201 {object} dto.APIResponse{data=models.Staff} "Staff member created"
// @Failure 400 {object} dto.APIResponse "Invalid request data or unknown role"
// @Failure 409 {object} dto.APIResponse "Duplicate unique field"
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.staffService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(staff))
}

// ListStaff lists staff members
// @Summary List staff
// @Tags staff
// @Produce json
// @Param role query string false "Filter by role"
// @Param includeInactive query bool false "Include inactive records"
// @Success 200 {object} dto.APIResponse{data=[]models.Staff} "Staff retrieved"
// @Router /staff [get]
func (c *StaffController) ListStaff(ctx *gin.Context) {
	staff, err := c.staffService.List(ctx, staffFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(staff))
}

// GetStaff retrieves one staff member
// @Summary Get staff member
// @Tags staff
// @Produce json
// @Param employeeNumber path string true "Employee number" example(STF25001)
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member retrieved"
// @Failure 404 {object} dto.APIResponse "Staff member not found"
// @Router /staff/{employeeNumber} [get]
func (c *StaffController) GetStaff(ctx *gin.Context) {
	staff, err := c.staffService.Get(ctx, ctx.Param("employeeNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(staff))
}

// UpdateStaff updates a staff member
// @Summary Update staff member
// @Description Updates contact and role fields. The employee number is immutable.
// @Tags staff
// @Accept json
// @Produce json
// @Param employeeNumber path string true "Employee number"
// @Param request body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member updated"
// @Failure 400 {object} dto.APIResponse "Unknown role"
// @Failure 404 {object} dto.APIResponse "Staff member not found"
// @Router /staff/{employeeNumber} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.staffService.Update(ctx, ctx.Param("employeeNumber"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(staff))
}

// DeleteStaff removes a staff member
// @Summary Delete staff member
// @Tags staff
// @Produce json
// @Param employeeNumber path string true "Employee number"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Staff member deleted"
// @Failure 404 {object} dto.APIResponse "Staff member not found"
// @Router /staff/{employeeNumber} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	if err := c.staffService.Delete(ctx, ctx.Param("employeeNumber")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Staff member deleted"}))
}

// ImportStaff bulk-hires staff from a spreadsheet
// @Summary Import staff
// @Description Accepts a csv/xlsx file with name, email and role columns. Rows are processed in order; partial success is the normal result.
// @Tags staff
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.csv or .xlsx) with name, email and role columns"
// @Success 200 {object} dto.APIResponse{data=dto.ImportSummary} "Import summary"
// @Failure 400 {object} dto.APIResponse "Unsupported file or missing required columns"
// @Router /staff/import [post]
func (c *StaffController) ImportStaff(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Upload file is required")))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	summary, err := c.importService.ImportStaff(ctx, file, fileHeader.Filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// ExportStaff downloads staff as CSV
// @Summary Export staff
// @Description Streams the filtered staff list as a CSV attachment, sorted by employee number
// @Tags staff
// @Produce text/csv
// @Param role query string false "Filter by role"
// @Success 200 {string} string "CSV content"
// @Router /staff/export [get]
func (c *StaffController) ExportStaff(ctx *gin.Context) {
	filename := fmt.Sprintf("staff-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := c.exportService.ExportStaff(ctx, ctx.Writer, staffFilterFromQuery(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
}
