package dto

import "time"

// ======================
// Request DTOs
// ======================

// CreateSubmissionRequest needs at least a link, a description or a file.
type CreateSubmissionRequest struct {
	URL          string `json:"url" validate:"omitempty,url,max=2000"`
	Description  string `json:"description" validate:"required_without_all=URL DataHash,max=10000"`
	DataHash     string `json:"data_hash" validate:"omitempty,max=128"`
	DataFileName string `json:"data_file_name" validate:"required_with=DataHash,max=255"`
}

// ======================
// Response DTOs
// ======================

type FulfillmentResponse struct {
	ID           string     `json:"id"`
	BountyID     string     `json:"bounty_id"`
	FulfillerID  string     `json:"fulfiller_id"`
	URL          string     `json:"url,omitempty"`
	Description  string     `json:"description,omitempty"`
	DataHash     string     `json:"data_hash,omitempty"`
	DataFileName string     `json:"data_file_name,omitempty"`
	Accepted     bool       `json:"accepted"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
