package view

import "bountyboard_backend/internal/models"

type ActionKind string

const (
	ActionNone          ActionKind = "none"
	ActionAccept        ActionKind = "accept"
	ActionRateFulfiller ActionKind = "rate_fulfiller"
	ActionRateIssuer    ActionKind = "rate_issuer"
)

const (
	ModalRateFulfiller = "issueRatingForFulfiller"
	ModalRateIssuer    = "issueRatingForIssuer"
)

// Action is the single control offered on a submission. The client runs the
// login-protection gate first, then either opens Modal with RatingTarget or
// calls Endpoint directly.
type Action struct {
	Kind          ActionKind `json:"kind"`
	Label         string     `json:"label,omitempty"`
	Icon          string     `json:"icon,omitempty"`
	RequiresLogin bool       `json:"requires_login"`
	Modal         string     `json:"modal,omitempty"`
	RatingTarget  *Identity  `json:"rating_target,omitempty"`
	Method        string     `json:"method,omitempty"`
	Endpoint      string     `json:"endpoint,omitempty"`
}

// SelectAction picks at most one action. The first matching rule wins:
//  1. owner, bounty Active or Expired, not accepted -> accept
//  2. owner, accepted, fulfiller not rated yet      -> rate fulfiller
//  3. submitter, accepted, issuer not rated yet     -> rate issuer
func SelectAction(s Submission, b Bounty, v ViewerContext) Action {
	switch {
	case v.IsBountyOwner && acceptableStage(b.Stage) && !s.Accepted:
		return Action{
			Kind:          ActionAccept,
			Icon:          "check",
			RequiresLogin: true,
			Method:        "POST",
			Endpoint:      fulfillmentEndpoint(s.ID, "accept"),
		}

	case v.IsBountyOwner && s.Accepted && s.FulfillerReview == nil:
		target := Identity{Name: s.Fulfiller.Name, Address: s.Fulfiller.Address, ImageURL: s.Fulfiller.ImageURL}
		return Action{
			Kind:          ActionRateFulfiller,
			Icon:          "star",
			RequiresLogin: true,
			Modal:         ModalRateFulfiller,
			RatingTarget:  &target,
			Method:        "POST",
			Endpoint:      fulfillmentEndpoint(s.ID, "reviews"),
		}

	case v.IsSubmitter && s.Accepted && s.IssuerReview == nil:
		target := Identity{Name: b.Owner.Name, Address: b.Owner.Address, ImageURL: b.Owner.ImageURL}
		return Action{
			Kind:          ActionRateIssuer,
			Icon:          "star",
			RequiresLogin: true,
			Modal:         ModalRateIssuer,
			RatingTarget:  &target,
			Method:        "POST",
			Endpoint:      fulfillmentEndpoint(s.ID, "reviews"),
		}
	}
	return Action{Kind: ActionNone}
}

func acceptableStage(stage models.BountyStage) bool {
	return stage == models.BountyStageActive || stage == models.BountyStageExpired
}

func fulfillmentEndpoint(id, op string) string {
	return "/api/v1/fulfillments/" + id + "/" + op
}
