package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID      string           `gorm:"type:varchar(36);not null;index"`
	Kind        NotificationKind `gorm:"type:varchar(40);not null"`
	BountyID    string           `gorm:"type:varchar(36);index"`
	BountyTitle string
	FromUserID  *string `gorm:"type:varchar(36)"`
	Link        string
	Viewed      bool `gorm:"default:false;index"`
	ViewedAt    *time.Time
	Data        datatypes.JSON // {"fulfillment_id": "...", "rating": 5}

	FromUser *User `gorm:"foreignKey:FromUserID"`
}
