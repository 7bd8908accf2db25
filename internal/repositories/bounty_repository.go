package repositories

import (
	"errors"
	"time"

	"bountyboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBountyNotFound = errors.New("bounty not found")

type BountyRepository interface {
	Create(db *gorm.DB, bounty *models.Bounty) error
	FindByID(db *gorm.DB, id string) (*models.Bounty, error)
	UpdateStage(db *gorm.DB, id string, stage models.BountyStage) error
	FindOverdue(db *gorm.DB, now time.Time, limit int) ([]models.Bounty, error)
}

type BountyRepositoryImpl struct{}

func NewBountyRepository() BountyRepository {
	return &BountyRepositoryImpl{}
}

func (r *BountyRepositoryImpl) Create(db *gorm.DB, bounty *models.Bounty) error {
	return db.Create(bounty).Error
}

func (r *BountyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Bounty, error) {
	var bounty models.Bounty
	if err := db.Preload("Owner").First(&bounty, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBountyNotFound
		}
		return nil, err
	}
	return &bounty, nil
}

func (r *BountyRepositoryImpl) UpdateStage(db *gorm.DB, id string, stage models.BountyStage) error {
	result := db.Model(&models.Bounty{}).Where("id = ?", id).Update("stage", stage)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBountyNotFound
	}
	return nil
}

// FindOverdue возвращает активные баунти с истёкшим дедлайном.
func (r *BountyRepositoryImpl) FindOverdue(db *gorm.DB, now time.Time, limit int) ([]models.Bounty, error) {
	var bounties []models.Bounty
	err := db.Where("stage = ? AND deadline < ?", models.BountyStageActive, now).
		Order("deadline ASC").
		Limit(limit).
		Find(&bounties).Error
	return bounties, err
}
