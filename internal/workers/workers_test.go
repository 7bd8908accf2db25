package workers

import (
	"context"
	"testing"
	"time"

	"bountyboard_backend/internal/format"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/testutil"
	"bountyboard_backend/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService() services.NotificationService {
	presenter := view.NewPresenter(format.NewMarkdown(), "https://ipfs.infura.io/ipfs", nil)
	return services.NewNotificationService(repositories.NewNotificationRepository(), presenter, nil)
}

func setDeadline(t *testing.T, db *gorm.DB, b *models.Bounty, deadline time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&models.Bounty{}).Where("id = ?", b.ID).Update("deadline", deadline).Error)
}

func stageOf(t *testing.T, db *gorm.DB, id string) models.BountyStage {
	t.Helper()
	var b models.Bounty
	require.NoError(t, db.First(&b, "id = ?", id).Error)
	return b.Stage
}

func TestExpireOverdue(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner", "0xowner")

	overdue := testutil.CreateBounty(t, db, owner, models.BountyStageActive)
	setDeadline(t, db, overdue, time.Now().Add(-time.Hour))
	future := testutil.CreateBounty(t, db, owner, models.BountyStageActive)
	draft := testutil.CreateBounty(t, db, owner, models.BountyStageDraft)
	setDeadline(t, db, draft, time.Now().Add(-time.Hour))

	notifications := newNotificationService()
	w := NewBountyWorker(db, repositories.NewBountyRepository(), notifications)

	n, err := w.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, models.BountyStageExpired, stageOf(t, db, overdue.ID))
	assert.Equal(t, models.BountyStageActive, stageOf(t, db, future.ID))
	assert.Equal(t, models.BountyStageDraft, stageOf(t, db, draft.ID))

	page, err := notifications.ListNotifications(context.Background(), db, owner.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Notifications, 1)
	assert.Equal(t, models.NotificationBountyExpired, page.Notifications[0].Kind)
	assert.Equal(t, "/bounty/"+overdue.ID, page.Notifications[0].Link)

	// второй проход ничего не находит
	n, err = w.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCleanupViewed(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "user", "0xuser")

	old := testutil.CreateNotification(t, db, user.ID, models.NotificationRatingIssued, time.Now().AddDate(0, 0, -120))
	oldUnread := testutil.CreateNotification(t, db, user.ID, models.NotificationRatingIssued, time.Now().AddDate(0, 0, -120))
	recent := testutil.CreateNotification(t, db, user.ID, models.NotificationRatingIssued, time.Now().AddDate(0, 0, -5))
	for _, id := range []string{old.ID, recent.ID} {
		require.NoError(t, db.Model(&models.Notification{}).Where("id = ?", id).Update("viewed", true).Error)
	}

	w := NewNotificationCleanupWorker(db, newNotificationService(), 90)
	n, err := w.CleanupViewed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var left []models.Notification
	require.NoError(t, db.Order("created_at").Find(&left).Error)
	ids := []string{}
	for _, l := range left {
		ids = append(ids, l.ID)
	}
	assert.ElementsMatch(t, []string{oldUnread.ID, recent.ID}, ids)
}

func TestRunner_StopsWithContext(t *testing.T) {
	db := testutil.NewDB(t)
	notifications := newNotificationService()
	r := NewRunner(
		NewBountyWorker(db, repositories.NewBountyRepository(), notifications),
		NewNotificationCleanupWorker(db, notifications, 90),
		time.Hour, time.Hour,
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
}
