package workers

import (
	"context"
	"time"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"

	"gorm.io/gorm"
)

const expiryBatchSize = 100

type BountyWorker struct {
	db                  *gorm.DB
	bountyRepo          repositories.BountyRepository
	notificationService services.NotificationService
	now                 func() time.Time
}

func NewBountyWorker(db *gorm.DB, bountyRepo repositories.BountyRepository, notificationService services.NotificationService) *BountyWorker {
	return &BountyWorker{
		db:                  db,
		bountyRepo:          bountyRepo,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// ExpireOverdue переводит активные баунти с прошедшим дедлайном в Expired
// и уведомляет владельцев. Возвращает число просроченных баунти.
func (w *BountyWorker) ExpireOverdue(ctx context.Context) (int, error) {
	expired := 0
	for {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		bounties, err := w.bountyRepo.FindOverdue(w.db, w.now(), expiryBatchSize)
		if err != nil {
			return expired, err
		}
		if len(bounties) == 0 {
			return expired, nil
		}

		for i := range bounties {
			b := &bounties[i]
			if err := w.bountyRepo.UpdateStage(w.db, b.ID, models.BountyStageExpired); err != nil {
				return expired, err
			}
			expired++

			if err := w.notificationService.Notify(ctx, w.db, &dto.NotifyRequest{
				UserID:      b.OwnerID,
				Kind:        models.NotificationBountyExpired,
				BountyID:    b.ID,
				BountyTitle: b.Title,
				Link:        "/bounty/" + b.ID,
			}); err != nil {
				logger.WorkerLog("bounty_expiry", "notify_owner", err, "bounty_id", b.ID)
			}
		}

		if len(bounties) < expiryBatchSize {
			return expired, nil
		}
	}
}
