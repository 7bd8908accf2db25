// Package testutil собирает общие для тестов вещи: SQLite в памяти и фикстуры.
package testutil

import (
	"testing"
	"time"

	"bountyboard_backend/database"
	"bountyboard_backend/internal/config"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config returns a config pointing at a fresh in-memory SQLite database.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Files.Gateway = "https://ipfs.infura.io/ipfs"
	cfg.Notifications.PageSize = 10
	cfg.Workers.RetentionDays = 90
	cfg.Locale = "en"
	return cfg
}

// NewDB opens a migrated database that lives until the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewDBWithConfig(t, Config())
}

func NewDBWithConfig(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	logger.Init("test")

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, name, address string) *models.User {
	t.Helper()
	user := &models.User{
		Name:                 name,
		Email:                name + "@example.com",
		PublicAddress:        address,
		SmallProfileImageURL: "https://img.example.com/" + address + ".png",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateBounty(t *testing.T, db *gorm.DB, owner *models.User, stage models.BountyStage) *models.Bounty {
	t.Helper()
	bounty := &models.Bounty{
		Title:       "Fix the login bug",
		Description: "Steps are in the issue",
		Stage:       stage,
		OwnerID:     owner.ID,
		Deadline:    time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(bounty).Error)
	bounty.Owner = *owner
	return bounty
}

func CreateFulfillment(t *testing.T, db *gorm.DB, bounty *models.Bounty, fulfiller *models.User, accepted bool) *models.Fulfillment {
	t.Helper()
	f := &models.Fulfillment{
		BountyID:     bounty.ID,
		FulfillerID:  fulfiller.ID,
		URL:          "https://github.com/example/repo/pull/1",
		Description:  "Fixed in the linked PR",
		DataHash:     "QmHash",
		DataFileName: "patch.zip",
		Accepted:     accepted,
	}
	if accepted {
		now := time.Now()
		f.AcceptedAt = &now
	}
	require.NoError(t, db.Create(f).Error)
	return f
}

func CreateNotification(t *testing.T, db *gorm.DB, userID string, kind models.NotificationKind, createdAt time.Time) *models.Notification {
	t.Helper()
	n := &models.Notification{
		UserID:      userID,
		Kind:        kind,
		BountyTitle: "Fix the login bug",
		Link:        "/bounty/1",
	}
	n.CreatedAt = createdAt
	require.NoError(t, db.Create(n).Error)
	return n
}
