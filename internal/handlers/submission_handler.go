package handlers

import (
	"net/http"

	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(base *BaseHandler, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       base,
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) RegisterRoutes(r *gin.RouterGroup, tokens *auth.TokenManager) {
	// Public routes - аноним видит работы без кнопок действий
	public := r.Group("")
	public.Use(middleware.OptionalAuthMiddleware(tokens))
	{
		public.GET("/bounties/:bountyId/submissions", h.ListBountySubmissions)
		public.GET("/fulfillments/:fulfillmentId", h.GetSubmission)
	}

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/bounties/:bountyId/submissions", h.CreateSubmission)
		protected.POST("/fulfillments/:fulfillmentId/accept", h.AcceptFulfillment)
	}
}

func (h *SubmissionHandler) ListBountySubmissions(c *gin.Context) {
	bountyID := c.Param("bountyId")

	submissions, err := h.submissionService.ListBountySubmissions(c.Request.Context(), h.GetDB(c), bountyID, h.GetViewerID(c), h.RenderContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	fulfillmentID := c.Param("fulfillmentId")

	submission, err := h.submissionService.GetSubmission(c.Request.Context(), h.GetDB(c), fulfillmentID, h.GetViewerID(c), h.RenderContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSubmissionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	fulfillment, err := h.submissionService.CreateSubmission(c.Request.Context(), h.GetDB(c), userID, c.Param("bountyId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fulfillment)
}

func (h *SubmissionHandler) AcceptFulfillment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fulfillment, err := h.submissionService.AcceptFulfillment(c.Request.Context(), h.GetDB(c), userID, c.Param("fulfillmentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fulfillment)
}
