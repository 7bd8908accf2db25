package models

// User is a marketplace identity, keyed by wallet address.
type User struct {
	BaseModel
	Name                 string
	Email                string
	PublicAddress        string `gorm:"type:varchar(64);uniqueIndex;not null"`
	SmallProfileImageURL string
}
