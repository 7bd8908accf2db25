package repositories

import (
	"errors"
	"time"

	"bountyboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)

type NotificationRepository interface {
	CreateNotification(db *gorm.DB, notification *models.Notification) error
	FindNotificationByID(db *gorm.DB, id string) (*models.Notification, error)
	FindUserNotifications(db *gorm.DB, userID string, offset, limit int) ([]models.Notification, int64, error)
	MarkViewed(db *gorm.DB, userID, notificationID string) error
	MarkAllViewed(db *gorm.DB, userID string) (int64, error)
	GetUnreadCount(db *gorm.DB, userID string) (int64, error)
	DeleteViewedOlderThan(db *gorm.DB, before time.Time) (int64, error)
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) CreateNotification(db *gorm.DB, notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindNotificationByID(db *gorm.DB, id string) (*models.Notification, error) {
	var notification models.Notification
	err := db.Preload("FromUser").First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// FindUserNotifications returns one page, newest first, and the user's total.
func (r *NotificationRepositoryImpl) FindUserNotifications(db *gorm.DB, userID string, offset, limit int) ([]models.Notification, int64, error) {
	var total int64
	if err := db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := db.Preload("FromUser").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// MarkViewed трогает ровно одну строку и только если она принадлежит userID.
func (r *NotificationRepositoryImpl) MarkViewed(db *gorm.DB, userID, notificationID string) error {
	result := db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]any{"viewed": true, "viewed_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllViewed(db *gorm.DB, userID string) (int64, error) {
	result := db.Model(&models.Notification{}).
		Where("user_id = ? AND viewed = ?", userID, false).
		Updates(map[string]any{"viewed": true, "viewed_at": time.Now()})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) GetUnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND viewed = ?", userID, false).
		Count(&count).Error
	return count, err
}

// DeleteViewedOlderThan чистит прочитанные уведомления старше before.
func (r *NotificationRepositoryImpl) DeleteViewedOlderThan(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Where("viewed = ? AND created_at < ?", true, before).Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) validateNotification(n *models.Notification) error {
	if n.UserID == "" || !n.Kind.Valid() {
		return ErrInvalidNotificationData
	}
	return nil
}
