package workers

import (
	"context"
	"time"

	"bountyboard_backend/internal/services"

	"gorm.io/gorm"
)

// NotificationCleanupWorker удаляет прочитанные уведомления старше retention.
type NotificationCleanupWorker struct {
	db                  *gorm.DB
	notificationService services.NotificationService
	retention           time.Duration
	now                 func() time.Time
}

func NewNotificationCleanupWorker(db *gorm.DB, notificationService services.NotificationService, retentionDays int) *NotificationCleanupWorker {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return &NotificationCleanupWorker{
		db:                  db,
		notificationService: notificationService,
		retention:           time.Duration(retentionDays) * 24 * time.Hour,
		now:                 time.Now,
	}
}

func (w *NotificationCleanupWorker) CleanupViewed(ctx context.Context) (int, error) {
	deleted, err := w.notificationService.CleanupViewed(ctx, w.db, w.now().Add(-w.retention))
	return int(deleted), err
}
