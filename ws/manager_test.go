package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bountyboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, manager *WebSocketManager) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set(string(contextkeys.UserIDKey), c.Query("as"))
		c.Next()
	}, NewWebSocketHandler(manager, func(*gin.Context, string) (int64, error) { return 3, nil }, nil).ServeWS)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?as=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	var ev Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestWebSocket_InitialCountAndPush(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := NewWebSocketManager()
	go manager.Run(ctx)
	srv := newTestServer(t, manager)

	alice := dial(t, srv, "alice")
	bob := dial(t, srv, "bob")

	assert.Equal(t, Event{Type: EventUnreadCount, UnreadCount: 3}, readEvent(t, alice))
	assert.Equal(t, Event{Type: EventUnreadCount, UnreadCount: 3}, readEvent(t, bob))

	require.Eventually(t, func() bool { return manager.IsClientConnected("alice") }, time.Second, 10*time.Millisecond)

	manager.PushUnreadCount("alice", 7)
	assert.Equal(t, int64(7), readEvent(t, alice).UnreadCount)

	// bob ничего не должен получить
	require.NoError(t, bob.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var ev Event
	assert.Error(t, bob.ReadJSON(&ev))
}

func TestWebSocket_RequiresUser(t *testing.T) {
	manager := NewWebSocketManager()
	srv := newTestServer(t, manager)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestWebSocket_DisconnectUnregisters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := NewWebSocketManager()
	go manager.Run(ctx)
	srv := newTestServer(t, manager)

	conn := dial(t, srv, "carol")
	readEvent(t, conn)
	require.Eventually(t, func() bool { return manager.GetClientCount("carol") == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return manager.GetClientCount("carol") == 0 }, 2*time.Second, 10*time.Millisecond)
}
