package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/metrics"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/internal/view"
	"bountyboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxPanelItems ограничивает панель: дальше клиент листает через список уведомлений.
const maxPanelItems = 200

// UnreadPusher доставляет новый счётчик непрочитанных открытым вкладкам пользователя.
type UnreadPusher interface {
	PushUnreadCount(userID string, count int64)
}

type NotificationService interface {
	// GetPanel never fails: a fetch error becomes the error-state panel.
	GetPanel(ctx context.Context, db *gorm.DB, userID string, offset, limit int, rc view.RenderContext) view.Panel
	ListNotifications(ctx context.Context, db *gorm.DB, userID string, offset, limit int) (*dto.NotificationListResponse, error)
	MarkViewed(ctx context.Context, db *gorm.DB, userID, notificationID string) error
	MarkAllViewed(ctx context.Context, db *gorm.DB, userID string) error
	UnreadCount(ctx context.Context, db *gorm.DB, userID string) (int64, error)
	Notify(ctx context.Context, db *gorm.DB, req *dto.NotifyRequest) error
	CleanupViewed(ctx context.Context, db *gorm.DB, olderThan time.Time) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	presenter        *view.Presenter
	pusher           UnreadPusher
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	presenter *view.Presenter,
	pusher UnreadPusher,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		presenter:        presenter,
		pusher:           pusher,
	}
}

func (s *notificationService) GetPanel(ctx context.Context, db *gorm.DB, userID string, offset, limit int, rc view.RenderContext) view.Panel {
	// панель показывает всё, что клиент уже подгрузил, плюс следующую страницу
	notifications, total, err := s.notificationRepo.FindUserNotifications(db, userID, 0, panelWindow(offset, limit))
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load notification feed", err, "user_id", userID)
		return s.presenter.NotificationPanel(rc, view.Feed{HasError: true})
	}

	items := make([]view.NotificationItem, 0, len(notifications))
	for i := range notifications {
		items = append(items, notificationItem(&notifications[i]))
	}

	return s.presenter.NotificationPanel(rc, view.Feed{
		Items:      items,
		TotalCount: int(total),
		IsLoaded:   true,
	})
}

// panelWindow - сколько строк ленты читать для панели: уже подгруженное
// плюс следующая страница, но не больше maxPanelItems.
func panelWindow(offset, limit int) int {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 1
	}
	if limit >= maxPanelItems || offset > maxPanelItems-limit {
		return maxPanelItems
	}
	return offset + limit
}

func (s *notificationService) ListNotifications(ctx context.Context, db *gorm.DB, userID string, offset, limit int) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.FindUserNotifications(db, userID, offset, limit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	out := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: out,
		Total:         total,
		Offset:        offset,
		Limit:         limit,
	}, nil
}

func (s *notificationService) MarkViewed(ctx context.Context, db *gorm.DB, userID, notificationID string) error {
	if err := s.notificationRepo.MarkViewed(db, userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.DatabaseError(err)
	}
	s.pushUnread(ctx, db, userID)
	return nil
}

func (s *notificationService) MarkAllViewed(ctx context.Context, db *gorm.DB, userID string) error {
	updated, err := s.notificationRepo.MarkAllViewed(db, userID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if updated > 0 {
		s.pushUnread(ctx, db, userID)
	}
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(db, userID)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// Notify сохраняет уведомление и сразу пушит новый счётчик.
// Вызывать только после коммита окружающей транзакции.
func (s *notificationService) Notify(ctx context.Context, db *gorm.DB, req *dto.NotifyRequest) error {
	notification := &models.Notification{
		UserID:      req.UserID,
		Kind:        req.Kind,
		BountyID:    req.BountyID,
		BountyTitle: req.BountyTitle,
		Link:        req.Link,
	}
	if req.FromUserID != "" {
		from := req.FromUserID
		notification.FromUserID = &from
	}
	if req.Data != nil {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			return apperrors.InternalError(err)
		}
		notification.Data = datatypes.JSON(raw)
	}

	if err := s.notificationRepo.CreateNotification(db, notification); err != nil {
		if errors.Is(err, repositories.ErrInvalidNotificationData) {
			return apperrors.NewBadRequestError(err.Error())
		}
		return apperrors.DatabaseError(err)
	}

	metrics.NotificationsCreated.WithLabelValues(string(req.Kind)).Inc()
	logger.CtxInfo(ctx, "Notification created", "user_id", req.UserID, "kind", req.Kind)

	s.pushUnread(ctx, db, req.UserID)
	return nil
}

func (s *notificationService) CleanupViewed(ctx context.Context, db *gorm.DB, olderThan time.Time) (int64, error) {
	deleted, err := s.notificationRepo.DeleteViewedOlderThan(db, olderThan)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return deleted, nil
}

func (s *notificationService) pushUnread(ctx context.Context, db *gorm.DB, userID string) {
	if s.pusher == nil {
		return
	}
	count, err := s.notificationRepo.GetUnreadCount(db, userID)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to count unread notifications", err, "user_id", userID)
		return
	}
	s.pusher.PushUnreadCount(userID, count)
}

// ---------------- helpers ----------------

func notificationItem(n *models.Notification) view.NotificationItem {
	item := view.NotificationItem{
		ID:          n.ID,
		Kind:        n.Kind,
		BountyTitle: n.BountyTitle,
		Link:        n.Link,
		CreatedAt:   n.CreatedAt,
		Viewed:      n.Viewed,
	}
	if n.FromUser != nil {
		item.FromUser = &view.Identity{
			Name:     n.FromUser.Name,
			Address:  n.FromUser.PublicAddress,
			ImageURL: n.FromUser.SmallProfileImageURL,
		}
	}
	return item
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	resp := &dto.NotificationResponse{
		ID:          n.ID,
		Kind:        n.Kind,
		BountyID:    n.BountyID,
		BountyTitle: n.BountyTitle,
		Link:        n.Link,
		Viewed:      n.Viewed,
		ViewedAt:    n.ViewedAt,
		CreatedAt:   n.CreatedAt,
		FromUser:    dto.NewUserInfo(n.FromUser),
	}
	if len(n.Data) > 0 {
		var data map[string]any
		if err := json.Unmarshal(n.Data, &data); err == nil {
			resp.Data = data
		}
	}
	return resp
}

func bountyLink(bountyID string) string {
	return "/bounty/" + bountyID
}
