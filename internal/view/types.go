// Package view derives what the bounty pages show from already loaded data.
// Every function here is pure: the same records and viewer always produce the
// same view model, and nothing is mutated in place.
package view

import (
	"time"

	"bountyboard_backend/internal/i18n"
	"bountyboard_backend/internal/models"
)

type Identity struct {
	Name     string `json:"name,omitempty"`
	Address  string `json:"address"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Review is the part of a rating the submission view cares about.
type Review struct {
	Rating int    `json:"rating"`
	Text   string `json:"text,omitempty"`
}

// Submission is the read model of one fulfillment. Reviews are nil until the
// corresponding side has rated.
type Submission struct {
	ID              string
	BountyID        string
	Fulfiller       Identity
	URL             string
	Description     string
	FileHash        string
	FileName        string
	Accepted        bool
	CreatedAt       time.Time
	FulfillerReview *Review // left by the issuer about the fulfiller
	IssuerReview    *Review // left by the fulfiller about the issuer
}

type Bounty struct {
	Stage models.BountyStage
	Owner Identity
}

// ViewerContext is derived by comparing the logged-in identity with the
// bounty owner and the submitter. An anonymous viewer has both flags false.
type ViewerContext struct {
	IsBountyOwner bool
	IsSubmitter   bool
}

// RenderContext carries everything that depends on who is looking.
type RenderContext struct {
	Localizer i18n.Localizer
	Location  *time.Location
	Now       time.Time
}
