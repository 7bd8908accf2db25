package dto

import (
	"time"

	"bountyboard_backend/internal/models"
)

// NotifyRequest is built by services; it never comes from the client.
type NotifyRequest struct {
	UserID      string
	Kind        models.NotificationKind
	BountyID    string
	BountyTitle string
	FromUserID  string
	Link        string
	Data        map[string]any
}

type NotificationResponse struct {
	ID          string                  `json:"id"`
	Kind        models.NotificationKind `json:"kind"`
	BountyID    string                  `json:"bounty_id,omitempty"`
	BountyTitle string                  `json:"bounty_title"`
	Link        string                  `json:"link"`
	Viewed      bool                    `json:"viewed"`
	ViewedAt    *time.Time              `json:"viewed_at,omitempty"`
	Data        map[string]any          `json:"data,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	FromUser    *UserInfo               `json:"from_user,omitempty"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int64                   `json:"total"`
	Offset        int                     `json:"offset"`
	Limit         int                     `json:"limit"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
