package routes

import (
	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/handlers"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes регистрирует все HTTP и WebSocket маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
	tokens *auth.TokenManager,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.SubmissionHandler.RegisterRoutes(api, tokens)
		appHandlers.ReviewHandler.RegisterRoutes(api, tokens)
		appHandlers.NotificationHandler.RegisterRoutes(api, tokens)
	}

	// Регистрация WebSocket
	wsGroup := ginRouter.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware(tokens))
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /ws registered")
}
