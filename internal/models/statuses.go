package models

// BountyStage mirrors the on-chain bounty stage numbering.
type BountyStage int

const (
	BountyStageDraft     BountyStage = 0
	BountyStageActive    BountyStage = 1
	BountyStageDead      BountyStage = 2
	BountyStageCompleted BountyStage = 3
	BountyStageExpired   BountyStage = 4
)

var bountyStageKeys = map[BountyStage]string{
	BountyStageDraft:     "stages.draft",
	BountyStageActive:    "stages.active",
	BountyStageDead:      "stages.dead",
	BountyStageCompleted: "stages.completed",
	BountyStageExpired:   "stages.expired",
}

// Key returns the i18n key of the stage label.
func (s BountyStage) Key() string {
	if k, ok := bountyStageKeys[s]; ok {
		return k
	}
	return "stages.unknown"
}

func (s BountyStage) Valid() bool {
	_, ok := bountyStageKeys[s]
	return ok
}

// ReviewRole says which side of a fulfillment left the review.
type ReviewRole string

const (
	// ReviewRoleIssuer - владелец баунти оценивает исполнителя.
	ReviewRoleIssuer ReviewRole = "issuer"
	// ReviewRoleFulfiller - исполнитель оценивает владельца баунти.
	ReviewRoleFulfiller ReviewRole = "fulfiller"
)

type NotificationKind string

const (
	NotificationFulfillmentSubmitted NotificationKind = "fulfillment_submitted"
	NotificationFulfillmentAccepted  NotificationKind = "fulfillment_accepted"
	NotificationRatingIssued         NotificationKind = "rating_issued"
	NotificationBountyExpired        NotificationKind = "bounty_expired"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationFulfillmentSubmitted, NotificationFulfillmentAccepted,
		NotificationRatingIssued, NotificationBountyExpired:
		return true
	}
	return false
}
