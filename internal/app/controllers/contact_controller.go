package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/services"
	"github.com/unifiedacademics/uap-backend/internal/middleware"
)

// ContactController handles the public contact form and its admin triage
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// SubmitContactRequest stores a public contact form submission
// @Summary Submit contact request
// @Description Public endpoint; no session required
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequestForm true "Contact form"
// @Success 201 {object} dto.APIResponse{data=models.ContactRequest} "Request received"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /contact [post]
func (c *ContactController) SubmitContactRequest(ctx *gin.Context) {
	var form dto.ContactRequestForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact form data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.contactService.Submit(ctx, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(request))
}

// ListContactRequests lists contact requests for triage
// @Summary List contact requests
// @Tags contact
// @Produce json
// @Param status query string false "Filter by status (new, read, resolved)"
// @Success 200 {object} dto.APIResponse{data=[]models.ContactRequest} "Requests retrieved"
// @Failure 400 {object} dto.APIResponse "Unknown status"
// @Router /contact-requests [get]
func (c *ContactController) ListContactRequests(ctx *gin.Context) {
	requests, err := c.contactService.List(ctx, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(requests))
}

// UpdateContactRequestStatus moves a contact request through triage
// @Summary Update contact request status
// @Description Only the status moves; the submitted message is immutable
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Contact request ID"
// @Param request body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.ContactRequest} "Status updated"
// @Failure 400 {object} dto.APIResponse "Unknown status"
// @Failure 404 {object} dto.APIResponse "Contact request not found"
// @Router /contact-requests/{id}/status [put]
func (c *ContactController) UpdateContactRequestStatus(ctx *gin.Context) {
	var req dto.UpdateContactStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.contactService.UpdateStatus(ctx, ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(request))
}

// DeleteContactRequest removes a contact request
// @Summary Delete contact request
// @Tags contact
// @Produce json
// @Param id path string true "Contact request ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Contact request deleted"
// @Failure 404 {object} dto.APIResponse "Contact request not found"
// @Router /contact-requests/{id} [delete]
func (c *ContactController) DeleteContactRequest(ctx *gin.Context) {
	if err := c.contactService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Contact request deleted"}))
}
