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

// TeacherController handles teacher record endpoints, including bulk import
// and CSV export.
type TeacherController struct {
	teacherService *services.TeacherService
	importService  *services.ImportService
	exportService  *services.ExportService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(
	teacherService *services.TeacherService,
	importService *services.ImportService,
	exportService *services.ExportService,
) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		importService:  importService,
		exportService:  exportService,
	}
}

func teacherFilterFromQuery(ctx *gin.Context) repositories.TeacherFilter {
	return repositories.TeacherFilter{
		Department:      ctx.Query("department"),
		IncludeInactive: ctx.Query("includeInactive") == "true",
	}
}

// CreateTeacher appoints a single teacher
// @Summary Create teacher
// @Description Runs the appointment pipeline: duplicate probe, registration number allocation, credentials email
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Duplicate unique field"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(teacher))
}

// ListTeachers lists teachers
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Param department query string false "Filter by department"
// @Param includeInactive query bool false "Include inactive records"
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.List(ctx, teacherFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(teachers))
}

// GetTeacher retrieves one teacher
// @Summary Get teacher
// @Tags teachers
// @Produce json
// @Param registrationNumber path string true "Registration number" example(UAP25001)
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{registrationNumber} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	teacher, err := c.teacherService.Get(ctx, ctx.Param("registrationNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(teacher))
}

// UpdateTeacher updates a teacher
// @Summary Update teacher
// @Description Updates contact and profile fields. The registration number is immutable.
// @Tags teachers
// @Accept json
// @Produce json
// @Param registrationNumber path string true "Registration number"
// @Param request body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher updated"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{registrationNumber} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.Update(ctx, ctx.Param("registrationNumber"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(teacher))
}

// DeleteTeacher removes a teacher
// @Summary Delete teacher
// @Tags teachers
// @Produce json
// @Param registrationNumber path string true "Registration number"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Teacher deleted"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{registrationNumber} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	if err := c.teacherService.Delete(ctx, ctx.Param("registrationNumber")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Teacher deleted"}))
}

// ImportTeachers bulk-appoints teachers from a spreadsheet
// @Summary Import teachers
// @Description Accepts a csv/xlsx file plus department and session years. Rows are processed in order; partial success is the normal result.
// @Tags teachers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.csv or .xlsx) with name and email columns"
// @Param department formData string true "Department code" example(CSE)
// @Param sessionStartYear formData int true "Session start year" example(2025)
// @Param sessionEndYear formData int true "Session end year" example(2029)
// @Success 200 {object} dto.APIResponse{data=dto.ImportSummary} "Import summary"
// @Failure 400 {object} dto.APIResponse "Unsupported file or missing required columns"
// @Router /teachers/import [post]
func (c *TeacherController) ImportTeachers(ctx *gin.Context) {
	var opts dto.TeacherImportOptions
	if err := ctx.ShouldBind(&opts); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Department and session years are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

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

	summary, err := c.importService.ImportTeachers(ctx, file, fileHeader.Filename, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// ExportTeachers downloads teachers as CSV
// @Summary Export teachers
// @Description Streams the filtered teacher list as a CSV attachment, sorted by registration number
// @Tags teachers
// @Produce text/csv
// @Param department query string false "Filter by department"
// @Success 200 {string} string "CSV content"
// @Router /teachers/export [get]
func (c *TeacherController) ExportTeachers(ctx *gin.Context) {
	filename := fmt.Sprintf("teachers-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := c.exportService.ExportTeachers(ctx, ctx.Writer, teacherFilterFromQuery(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
}
