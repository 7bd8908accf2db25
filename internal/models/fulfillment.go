package models

import "time"

// Fulfillment is a submission made by a fulfiller against a bounty.
type Fulfillment struct {
	BaseModel
	BountyID     string `gorm:"type:varchar(36);not null;index"`
	FulfillerID  string `gorm:"type:varchar(36);not null;index"`
	URL          string
	Description  string
	DataHash     string
	DataFileName string
	Accepted     bool `gorm:"default:false"`
	AcceptedAt   *time.Time

	Bounty    Bounty   `gorm:"foreignKey:BountyID"`
	Fulfiller User     `gorm:"foreignKey:FulfillerID"`
	Reviews   []Review `gorm:"foreignKey:FulfillmentID"`
}

// ReviewBy returns the review left in the given role, or nil.
func (f *Fulfillment) ReviewBy(role ReviewRole) *Review {
	for i := range f.Reviews {
		if f.Reviews[i].Role == role {
			return &f.Reviews[i]
		}
	}
	return nil
}
