package dto

import (
	"time"

	"bountyboard_backend/internal/models"
)

type RateFulfillmentRequest struct {
	Rating int    `json:"rating" validate:"is-rating"`
	Review string `json:"review" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID            string            `json:"id"`
	FulfillmentID string            `json:"fulfillment_id"`
	Role          models.ReviewRole `json:"role"`
	Rating        int               `json:"rating"`
	Review        string            `json:"review,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`

	Reviewer *UserInfo `json:"reviewer,omitempty"`
	Reviewee *UserInfo `json:"reviewee,omitempty"`
}
