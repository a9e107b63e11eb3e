package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/middleware"
)

// StudentController handles student record endpoints, including bulk import
// and CSV export.
type StudentController struct {
	studentService *services.StudentService
	importService  *services.ImportService
	exportService  *services.ExportService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService *services.StudentService,
	importService *services.ImportService,
	exportService *services.ExportService,
) *StudentController {
	return &StudentController{
		studentService: studentService,
		importService:  importService,
		exportService:  exportService,
	}
}

func studentFilterFromQuery(ctx *gin.Context) repositories.StudentFilter {
	year, _ := strconv.Atoi(ctx.Query("sessionStartYear"))
	return repositories.StudentFilter{
		Department:       ctx.Query("department"),
		SessionStartYear: year,
		IncludeInactive:  ctx.Query("includeInactive") == "true",
	}
}

// CreateStudent admits a single student
// @Summary Create student
// @Description Runs the full admission pipeline: duplicate probe, registration and roll number allocation, credentials email
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Duplicate unique field"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(student))
}

// ListStudents lists students
// @Summary List students
// @Tags students
// @Produce json
// @Param department query string false "Filter by department"
// @Param sessionStartYear query int false "Filter by session start year"
// @Param includeInactive query bool false "Include inactive records"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx, studentFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}

// GetStudent retrieves one student
// @Summary Get student
// @Tags students
// @Produce json
// @Param registrationNumber path string true "Registration number" example(UAP25001)
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{registrationNumber} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("registrationNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// UpdateStudent updates a student
// @Summary Update student
// @Description Updates contact and profile fields. Registration and roll numbers are immutable.
// @Tags students
// @Accept json
// @Produce json
// @Param registrationNumber path string true "Registration number"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{registrationNumber} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx, ctx.Param("registrationNumber"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// DeleteStudent removes a student
// @Summary Delete student
// @Description Removes the record. The registration number is never reissued.
// @Tags students
// @Produce json
// @Param registrationNumber path string true "Registration number"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Student deleted"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{registrationNumber} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("registrationNumber")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Student deleted"}))
}

// ImportStudents bulk-admits students from a spreadsheet
// @Summary Import students
// @Description Accepts a csv/xlsx file plus shared form fields. Rows are processed in order; partial success is the normal result.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.csv or .xlsx) with name and email columns"
// @Param department formData string true "Department code" example(CSE)
// @Param sessionStartYear formData int true "Session start year" example(2025)
// @Param sessionEndYear formData int true "Session end year" example(2029)
// @Param category formData string false "Category applied to all rows"
// @Param label formData string false "Label applied to all rows"
// @Success 200 {object} dto.APIResponse{data=dto.ImportSummary} "Import summary"
// @Failure 400 {object} dto.APIResponse "Unsupported file or missing required columns"
// @Router /students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	var opts dto.StudentImportOptions
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

	summary, err := c.importService.ImportStudents(ctx, file, fileHeader.Filename, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// ExportStudents downloads students as CSV
// @Summary Export students
// @Description Streams the filtered student list as a CSV attachment, sorted by registration number
// @Tags students
// @Produce text/csv
// @Param department query string false "Filter by department"
// @Param sessionStartYear query int false "Filter by session start year"
// @Success 200 {string} string "CSV content"
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	filename := fmt.Sprintf("students-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := c.exportService.ExportStudents(ctx, ctx.Writer, studentFilterFromQuery(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
}
