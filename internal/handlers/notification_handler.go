package handlers

import (
	"net/http"

	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
	pageSize            int
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService, pageSize int) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		pageSize:            pageSize,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup, tokens *auth.TokenManager) {
	// Protected routes - All authenticated users
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(tokens))
	{
		notifications.GET("", h.GetUserNotifications)
		notifications.GET("/panel", h.GetPanel)
		notifications.GET("/unread-count", h.GetUnreadCount)
		notifications.PUT("/viewed-all", h.MarkAllAsViewed)
		notifications.PUT("/:notificationId/viewed", h.MarkAsViewed)
	}
}

// GetPanel всегда отвечает 200: ошибка загрузки - это состояние панели.
func (h *NotificationHandler) GetPanel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	offset, limit := ParseOffsetLimit(c, h.pageSize)
	panel := h.notificationService.GetPanel(c.Request.Context(), h.GetDB(c), userID, offset, limit, h.RenderContext(c))

	c.JSON(http.StatusOK, panel)
}

func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	offset, limit := ParseOffsetLimit(c, h.pageSize)
	page, err := h.notificationService.ListNotifications(c.Request.Context(), h.GetDB(c), userID, offset, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{UnreadCount: count})
}

func (h *NotificationHandler) MarkAsViewed(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkViewed(c.Request.Context(), h.GetDB(c), userID, c.Param("notificationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as viewed"})
}

func (h *NotificationHandler) MarkAllAsViewed(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllViewed(c.Request.Context(), h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as viewed"})
}
