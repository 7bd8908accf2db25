package ws

import (
	"net/http"
	"strings"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// UnreadCounter returns the current unread count so a fresh connection starts
// with the right badge.
type UnreadCounter func(c *gin.Context, userID string) (int64, error)

type WebSocketHandler struct {
	Manager  *WebSocketManager
	unread   UnreadCounter
	upgrader websocket.Upgrader
}

// NewWebSocketHandler accepts upgrades only from allowedOrigins; an empty
// list lets any origin through.
func NewWebSocketHandler(manager *WebSocketManager, unread UnreadCounter, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		Manager: manager,
		unread:  unread,
		upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// originChecker сравнивает Origin со списком без учёта регистра и
// завершающего слэша. Запрос без Origin (не браузер) пропускается.
func originChecker(allowed []string) func(r *http.Request) bool {
	normalized := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		origin = strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
		if origin != "" {
			normalized[origin] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		if len(normalized) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := normalized[strings.ToLower(strings.TrimRight(origin, "/"))]
		return ok
	}
}

// ServeWS ожидает userID от AuthMiddleware.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	userID := c.GetString(string(contextkeys.UserIDKey))
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var initial int64
	if h.unread != nil {
		n, err := h.unread(c, userID)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Failed to load unread count for ws client", "error", err)
		}
		initial = n
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "WebSocket upgrade error", "error", err)
		return
	}

	client := &Client{
		UserID:  userID,
		Conn:    conn,
		Send:    make(chan Event, 16),
		Manager: h.Manager,
	}
	client.Send <- Event{Type: EventUnreadCount, UnreadCount: initial}

	if !h.Manager.Register(client) {
		conn.Close()
		return
	}

	go client.readPump()
	go client.writePump()
}
