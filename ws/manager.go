package ws

import (
	"context"
	"sync"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/metrics"
)

// Event - сообщение, которое уходит клиенту.
type Event struct {
	Type        string `json:"type"`
	UnreadCount int64  `json:"unread_count"`
}

const EventUnreadCount = "unread_count"

type delivery struct {
	userID string
	event  Event
}

// WebSocketManager keeps every open connection per user. One user may have
// several tabs open, so the inner map is keyed by client.
type WebSocketManager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	push       chan delivery
	done       chan struct{}
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		push:       make(chan delivery, 256),
		done:       make(chan struct{}),
	}
}

// Run обслуживает регистрацию и доставку до отмены ctx.
func (manager *WebSocketManager) Run(ctx context.Context) {
	defer close(manager.done)
	for {
		select {
		case <-ctx.Done():
			manager.closeAll()
			return

		case client := <-manager.register:
			manager.mu.Lock()
			if manager.clients[client.UserID] == nil {
				manager.clients[client.UserID] = make(map[*Client]struct{})
			}
			manager.clients[client.UserID][client] = struct{}{}
			manager.mu.Unlock()
			metrics.WSConnections.Inc()
			logger.Debug("WebSocket client registered", "user_id", client.UserID)

		case client := <-manager.unregister:
			manager.remove(client)

		case d := <-manager.push:
			manager.deliver(d)
		}
	}
}

// Register returns false when the manager has already stopped.
func (manager *WebSocketManager) Register(client *Client) bool {
	select {
	case manager.register <- client:
		return true
	case <-manager.done:
		return false
	}
}

func (manager *WebSocketManager) Unregister(client *Client) {
	select {
	case manager.unregister <- client:
	case <-manager.done:
	}
}

// PushUnreadCount queues the new unread count for every open connection of
// the user. It never blocks the caller; if the queue is full the event is
// dropped and the client catches up on its next panel fetch.
func (manager *WebSocketManager) PushUnreadCount(userID string, count int64) {
	select {
	case manager.push <- delivery{userID: userID, event: Event{Type: EventUnreadCount, UnreadCount: count}}:
	default:
		logger.Warn("WebSocket push queue full, dropping event", "user_id", userID)
	}
}

func (manager *WebSocketManager) deliver(d delivery) {
	manager.mu.RLock()
	var stale []*Client
	for client := range manager.clients[d.userID] {
		select {
		case client.Send <- d.event:
		default:
			stale = append(stale, client)
		}
	}
	manager.mu.RUnlock()

	// канал переполнен - клиент не успевает читать, отключаем
	for _, client := range stale {
		manager.remove(client)
	}
}

func (manager *WebSocketManager) remove(client *Client) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	conns, ok := manager.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}
	delete(conns, client)
	if len(conns) == 0 {
		delete(manager.clients, client.UserID)
	}
	close(client.Send)
	metrics.WSConnections.Dec()
	logger.Debug("WebSocket client unregistered", "user_id", client.UserID)
}

func (manager *WebSocketManager) closeAll() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	for userID, conns := range manager.clients {
		for client := range conns {
			close(client.Send)
			metrics.WSConnections.Dec()
		}
		delete(manager.clients, userID)
	}
}

// GetClientCount возвращает количество открытых соединений пользователя
func (manager *WebSocketManager) GetClientCount(userID string) int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients[userID])
}

// IsClientConnected проверяет, подключен ли пользователь
func (manager *WebSocketManager) IsClientConnected(userID string) bool {
	return manager.GetClientCount(userID) > 0
}
