package repositories

import (
	"errors"
	"time"

	"bountyboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFulfillmentNotFound = errors.New("fulfillment not found")
	ErrAlreadyAccepted     = errors.New("fulfillment already accepted")
)

type FulfillmentRepository interface {
	Create(db *gorm.DB, f *models.Fulfillment) error
	FindByID(db *gorm.DB, id string) (*models.Fulfillment, error)
	FindByBounty(db *gorm.DB, bountyID string) ([]models.Fulfillment, error)
	MarkAccepted(db *gorm.DB, id string, at time.Time) error
}

type FulfillmentRepositoryImpl struct{}

func NewFulfillmentRepository() FulfillmentRepository {
	return &FulfillmentRepositoryImpl{}
}

func (r *FulfillmentRepositoryImpl) Create(db *gorm.DB, f *models.Fulfillment) error {
	return db.Create(f).Error
}

// FindByID загружает работу вместе с баунти, его владельцем, исполнителем и отзывами.
func (r *FulfillmentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Fulfillment, error) {
	var f models.Fulfillment
	err := db.Preload("Bounty.Owner").
		Preload("Fulfiller").
		Preload("Reviews").
		First(&f, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFulfillmentNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByBounty returns the fulfillments of a bounty, newest first.
func (r *FulfillmentRepositoryImpl) FindByBounty(db *gorm.DB, bountyID string) ([]models.Fulfillment, error) {
	var list []models.Fulfillment
	err := db.Preload("Fulfiller").
		Preload("Reviews").
		Where("bounty_id = ?", bountyID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// MarkAccepted is a conditional update, so two concurrent accepts cannot both win.
func (r *FulfillmentRepositoryImpl) MarkAccepted(db *gorm.DB, id string, at time.Time) error {
	result := db.Model(&models.Fulfillment{}).
		Where("id = ? AND accepted = ?", id, false).
		Updates(map[string]any{"accepted": true, "accepted_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Fulfillment{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrFulfillmentNotFound
		}
		return ErrAlreadyAccepted
	}
	return nil
}
