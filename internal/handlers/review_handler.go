package handlers

import (
	"net/http"

	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, tokens *auth.TokenManager) {
	r.GET("/fulfillments/:fulfillmentId/reviews", h.ListFulfillmentReviews)

	// оценку ставят только участники принятой работы
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/fulfillments/:fulfillmentId/reviews", h.RateFulfillment)
	}
}

func (h *ReviewHandler) ListFulfillmentReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListFulfillmentReviews(c.Request.Context(), h.GetDB(c), c.Param("fulfillmentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

func (h *ReviewHandler) RateFulfillment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RateFulfillmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.RateFulfillment(c.Request.Context(), h.GetDB(c), userID, c.Param("fulfillmentId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
