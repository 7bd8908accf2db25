package repositories

import (
	"errors"

	"bountyboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewAlreadyExists = errors.New("review already exists for this fulfillment and role")

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	FindByFulfillment(db *gorm.DB, fulfillmentID string) ([]models.Review, error)
	ExistsForRole(db *gorm.DB, fulfillmentID string, role models.ReviewRole) (bool, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	exists, err := r.ExistsForRole(db, review.FulfillmentID, review.Role)
	if err != nil {
		return err
	}
	if exists {
		return ErrReviewAlreadyExists
	}
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByFulfillment(db *gorm.DB, fulfillmentID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Reviewer").
		Preload("Reviewee").
		Where("fulfillment_id = ?", fulfillmentID).
		Order("created_at ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ExistsForRole(db *gorm.DB, fulfillmentID string, role models.ReviewRole) (bool, error) {
	var count int64
	err := db.Model(&models.Review{}).
		Where("fulfillment_id = ? AND role = ?", fulfillmentID, role).
		Count(&count).Error
	return count > 0, err
}
