package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/middleware"
)

// EmployeeController handles department employee endpoints
type EmployeeController struct {
	employeeService *services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employeeService: employeeService}
}

// CreateEmployee adds a single employee
// @Summary Create employee
// @Description Validates identity documents, assigns the next free department identifier and emails the generated credentials
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=models.Employee} "Employee created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Duplicate unique field or department pool exhausted"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	employee, err := c.employeeService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(employee))
}

// ListEmployees lists employees
// @Summary List employees
// @Description Lists employees ordered by identifier, optionally filtered by department
// @Tags employees
// @Produce json
// @Param department query string false "Filter by department"
// @Param includeInactive query bool false "Include soft-deleted records"
// @Success 200 {object} dto.APIResponse{data=[]models.Employee} "Employees retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /employees [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	includeInactive := ctx.Query("includeInactive") == "true"
	employees, err := c.employeeService.List(ctx, ctx.Query("department"), includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(employees))
}

// GetEmployee retrieves one employee
// @Summary Get employee
// @Tags employees
// @Produce json
// @Param employeeId path string true "Employee identifier" example(DICT001)
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Employee retrieved"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Router /employees/{employeeId} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	employee, err := c.employeeService.Get(ctx, ctx.Param("employeeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(employee))
}

// UpdateEmployee updates an employee
// @Summary Update employee
// @Description Applies the supplied fields; identity documents are re-validated and age follows date of birth
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeId path string true "Employee identifier"
// @Param request body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Employee updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Failure 409 {object} dto.APIResponse "Duplicate unique field"
// @Router /employees/{employeeId} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	employee, err := c.employeeService.Update(ctx, ctx.Param("employeeId"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(employee))
}

// DeleteEmployee soft-deletes an employee
// @Summary Deactivate employee
// @Description Soft-deletes the record; the identifier stays claimed until reactivation
// @Tags employees
// @Produce json
// @Param employeeId path string true "Employee identifier"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Employee deactivated"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Router /employees/{employeeId} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	if err := c.employeeService.Deactivate(ctx, ctx.Param("employeeId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Employee deactivated"}))
}

// ReactivateEmployee restores a soft-deleted employee
// @Summary Reactivate employee
// @Tags employees
// @Produce json
// @Param employeeId path string true "Employee identifier"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Employee reactivated"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Router /employees/{employeeId}/reactivate [post]
func (c *EmployeeController) ReactivateEmployee(ctx *gin.Context) {
	if err := c.employeeService.Reactivate(ctx, ctx.Param("employeeId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Employee reactivated"}))
}
