package models

type Review struct {
	BaseModel
	FulfillmentID string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_review_fulfillment_role"`
	Role          ReviewRole `gorm:"type:varchar(20);not null;uniqueIndex:idx_review_fulfillment_role"`
	ReviewerID    string     `gorm:"type:varchar(36);not null;index"`
	RevieweeID    string     `gorm:"type:varchar(36);not null;index"`
	Rating        int        `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ReviewText    string

	Reviewer User `gorm:"foreignKey:ReviewerID"`
	Reviewee User `gorm:"foreignKey:RevieweeID"`
}
