package repositories

import (
	"testing"
	"time"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_PageNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewNotificationRepository()
	user := testutil.CreateUser(t, db, "alice", "0xalice")
	other := testutil.CreateUser(t, db, "bob", "0xbob")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		testutil.CreateNotification(t, db, user.ID, models.NotificationFulfillmentSubmitted, base.Add(time.Duration(i)*time.Minute))
	}
	testutil.CreateNotification(t, db, other.ID, models.NotificationRatingIssued, base)

	page, total, err := repo.FindUserNotifications(db, user.ID, 0, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 3)
	assert.True(t, page[0].CreatedAt.After(page[1].CreatedAt))

	rest, _, err := repo.FindUserNotifications(db, user.ID, 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestNotificationRepository_MarkViewedTouchesOneRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewNotificationRepository()
	user := testutil.CreateUser(t, db, "alice", "0xalice")

	a := testutil.CreateNotification(t, db, user.ID, models.NotificationFulfillmentSubmitted, time.Now())
	b := testutil.CreateNotification(t, db, user.ID, models.NotificationFulfillmentAccepted, time.Now())

	require.NoError(t, repo.MarkViewed(db, user.ID, a.ID))

	gotA, err := repo.FindNotificationByID(db, a.ID)
	require.NoError(t, err)
	gotB, err := repo.FindNotificationByID(db, b.ID)
	require.NoError(t, err)

	assert.True(t, gotA.Viewed)
	assert.NotNil(t, gotA.ViewedAt)
	assert.False(t, gotB.Viewed)

	count, err := repo.GetUnreadCount(db, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestNotificationRepository_MarkViewedForeignRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewNotificationRepository()
	alice := testutil.CreateUser(t, db, "alice", "0xalice")
	bob := testutil.CreateUser(t, db, "bob", "0xbob")
	n := testutil.CreateNotification(t, db, alice.ID, models.NotificationRatingIssued, time.Now())

	assert.ErrorIs(t, repo.MarkViewed(db, bob.ID, n.ID), ErrNotificationNotFound)
	assert.ErrorIs(t, repo.MarkViewed(db, alice.ID, "missing"), ErrNotificationNotFound)
}

func TestNotificationRepository_MarkAllAndCleanup(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewNotificationRepository()
	user := testutil.CreateUser(t, db, "alice", "0xalice")

	old := testutil.CreateNotification(t, db, user.ID, models.NotificationBountyExpired, time.Now().AddDate(0, 0, -100))
	testutil.CreateNotification(t, db, user.ID, models.NotificationRatingIssued, time.Now())

	updated, err := repo.MarkAllViewed(db, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	deleted, err := repo.DeleteViewedOlderThan(db, time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = repo.FindNotificationByID(db, old.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationRepository_RejectsInvalid(t *testing.T) {
	db := testutil.NewDB(t)
	err := NewNotificationRepository().CreateNotification(db, &models.Notification{UserID: "u", Kind: "spam"})
	assert.ErrorIs(t, err, ErrInvalidNotificationData)
}
