package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
)

// WorkflowHandler handles approval chain actions on commissions.
type WorkflowHandler struct {
	workflowService portssvc.WorkflowSvcFacade
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(ws portssvc.WorkflowSvcFacade) *WorkflowHandler {
	return &WorkflowHandler{workflowService: ws}
}

// Approve godoc
// @Summary Approve a commission at its current stage
// @Description Advances the commission along the approval chain. An approved amount differing from the requested amount requires notes.
// @Tags workflow
// @Accept json
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Param command body dto.ApproveCommand true "Approval"
// @Success 200 {object} dto.CommissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /commissions/{commissionID}/approve [post]
func (h *WorkflowHandler) Approve(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var cmd dto.ApproveCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	comm, err := h.workflowService.Approve(c.Request.Context(), c.Param("commissionID"), actor, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionResponse(*comm))
}

// RequestRevision godoc
// @Summary Request a revision
// @Description Sends the commission back to the manager stage with a required reason and logs a revision entry.
// @Tags workflow
// @Accept json
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Param command body dto.RequestRevisionCommand true "Revision request"
// @Success 200 {object} dto.CommissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /commissions/{commissionID}/request-revision [post]
func (h *WorkflowHandler) RequestRevision(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var cmd dto.RequestRevisionCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Revision reason is required"})
		return
	}

	comm, err := h.workflowService.RequestRevision(c.Request.Context(), c.Param("commissionID"), actor, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionResponse(*comm))
}

// Deny godoc
// @Summary Deny a commission
// @Description Terminally denies the commission and permanently blacklists its job number. Denials are irreversible.
// @Tags workflow
// @Accept json
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Param command body dto.DenyCommand true "Denial"
// @Success 200 {object} dto.CommissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /commissions/{commissionID}/deny [post]
func (h *WorkflowHandler) Deny(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var cmd dto.DenyCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Denial reason is required"})
		return
	}

	comm, err := h.workflowService.Deny(c.Request.Context(), c.Param("commissionID"), actor, cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionResponse(*comm))
}
