package models

import "time"

type Bounty struct {
	BaseModel
	Title       string `gorm:"not null"`
	Description string
	Stage       BountyStage `gorm:"not null;default:0;index"`
	OwnerID     string      `gorm:"type:varchar(36);not null;index"`
	Deadline    time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}

// AcceptsSubmissions reports whether fulfillers may still submit work.
func (b *Bounty) AcceptsSubmissions() bool {
	return b.Stage == BountyStageActive
}

// CanAcceptFulfillments - владелец может принимать работы и после истечения срока.
func (b *Bounty) CanAcceptFulfillments() bool {
	return b.Stage == BountyStageActive || b.Stage == BountyStageExpired
}
