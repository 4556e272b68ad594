package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/middleware"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/utils/jobnumber"
)

// CommissionHandler handles commission submission and read requests.
type CommissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

// NewCommissionHandler creates a new CommissionHandler.
func NewCommissionHandler(cs portssvc.CommissionSvcFacade) *CommissionHandler {
	return &CommissionHandler{commissionService: cs}
}

// RegisterCommissionRoutes sets up the commission and workflow routes.
func RegisterCommissionRoutes(rg *gin.RouterGroup, cs portssvc.CommissionSvcFacade, ws portssvc.WorkflowSvcFacade) {
	registerJobNumberValidation()

	h := NewCommissionHandler(cs)
	wh := NewWorkflowHandler(ws)

	commissions := rg.Group("/commissions")
	{
		commissions.POST("", h.CreateCommission)
		commissions.GET("", h.ListCommissions)
		commissions.GET("/:commissionID", h.GetCommissionByID)
		commissions.GET("/:commissionID/revisions", h.ListRevisions)
		commissions.GET("/:commissionID/status-log", h.ListStatusLog)

		commissions.POST("/:commissionID/approve", wh.Approve)
		commissions.POST("/:commissionID/request-revision", wh.RequestRevision)
		commissions.POST("/:commissionID/deny", wh.Deny)
	}

	rg.GET("/denied-job-numbers/:jobNumber", h.GetDeniedJobNumber)
}

// registerJobNumberValidation binds the job number format check into gin's
// request validation. Anything that normalizes to four digits passes; the
// services re-validate with the same rule before persisting.
func registerJobNumberValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("jobnumber", func(fl validator.FieldLevel) bool {
			_, valid, _ := jobnumber.Validate(fl.Field().String())
			return valid
		})
	}
}

// actorOrAbort pulls the authenticated actor from context or aborts with 401.
func actorOrAbort(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return domain.Actor{}, false
	}
	return actor, true
}

// CreateCommission godoc
// @Summary Submit a commission
// @Description Creates a new commission submission entering the approval chain at the manager stage.
// @Tags commissions
// @Accept json
// @Produce json
// @Param commission body dto.CreateCommissionRequest true "Submission"
// @Success 201 {object} dto.CommissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /commissions [post]
func (h *CommissionHandler) CreateCommission(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	comm, err := h.commissionService.CreateCommission(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommissionResponse(*comm))
}

// ListCommissions godoc
// @Summary List commissions
// @Description Lists commission submissions, newest first. Filterable by status, stage and submitter.
// @Tags commissions
// @Produce json
// @Param status query string false "Commission status"
// @Param stage query string false "Approval stage"
// @Param submitterID query string false "Submitter user ID"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.CommissionResponse
// @Router /commissions [get]
func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	filter := portsrepo.CommissionListFilter{
		Status:      domain.CommissionStatus(c.Query("status")),
		Stage:       domain.ApprovalStage(c.Query("stage")),
		SubmitterID: c.Query("submitterID"),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
		return
	}
	if filter.Stage != "" && !filter.Stage.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid stage filter"})
		return
	}

	filter.Limit = 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	commissions, err := h.commissionService.ListCommissions(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.CommissionResponse, 0, len(commissions))
	for _, comm := range commissions {
		resp = append(resp, dto.ToCommissionResponse(comm))
	}
	c.JSON(http.StatusOK, resp)
}

// GetCommissionByID godoc
// @Summary Get a commission
// @Tags commissions
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Success 200 {object} dto.CommissionResponse
// @Failure 404 {object} ErrorResponse
// @Router /commissions/{commissionID} [get]
func (h *CommissionHandler) GetCommissionByID(c *gin.Context) {
	comm, err := h.commissionService.GetCommissionByID(c.Request.Context(), c.Param("commissionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionResponse(*comm))
}

// ListRevisions godoc
// @Summary List revision history
// @Description Returns the append-only revision log, newest revision first.
// @Tags commissions
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Success 200 {array} dto.RevisionLogResponse
// @Failure 404 {object} ErrorResponse
// @Router /commissions/{commissionID}/revisions [get]
func (h *CommissionHandler) ListRevisions(c *gin.Context) {
	entries, err := h.commissionService.ListRevisions(c.Request.Context(), c.Param("commissionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.RevisionLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToRevisionLogResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// ListStatusLog godoc
// @Summary List status audit trail
// @Description Returns the append-only status transition log, newest first.
// @Tags commissions
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Success 200 {array} dto.StatusLogResponse
// @Failure 404 {object} ErrorResponse
// @Router /commissions/{commissionID}/status-log [get]
func (h *CommissionHandler) ListStatusLog(c *gin.Context) {
	entries, err := h.commissionService.ListStatusLog(c.Request.Context(), c.Param("commissionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.StatusLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToStatusLogResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// GetDeniedJobNumber godoc
// @Summary Check a job number's denial lock
// @Description Returns the denial lock entry for a job number, 404 when the number is not locked.
// @Tags commissions
// @Produce json
// @Param jobNumber path string true "4 digit job number"
// @Success 200 {object} dto.DeniedJobNumberResponse
// @Failure 404 {object} ErrorResponse
// @Router /denied-job-numbers/{jobNumber} [get]
func (h *CommissionHandler) GetDeniedJobNumber(c *gin.Context) {
	entry, err := h.commissionService.GetDeniedJobNumber(c.Request.Context(), c.Param("jobNumber"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Job number is not locked"})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeniedJobNumberResponse{
		JobNumber:    entry.JobNumber,
		CommissionID: entry.CommissionID,
		DeniedBy:     entry.DeniedBy,
		DeniedAt:     entry.DeniedAt,
		DenialReason: entry.DenialReason,
	})
}

// respondServiceError maps service errors to HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
