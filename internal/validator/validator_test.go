package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rateRequest struct {
	Rating int    `json:"rating" validate:"is-rating"`
	Review string `json:"review" validate:"max=20"`
}

type stageRequest struct {
	Stage int    `json:"stage" validate:"is-bounty-stage"`
	Kind  string `json:"kind" validate:"omitempty,is-notification-kind"`
}

func TestValidate_Rating(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(rateRequest{Rating: 5}))

	err := v.Validate(rateRequest{Rating: 6, Review: "this review is longer than twenty"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a rating between 1 and 5", vErr.Errors["rating"])
	assert.Contains(t, vErr.Errors, "review")
}

func TestValidate_StageAndKind(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(stageRequest{Stage: 4, Kind: "rating_issued"}))

	err := v.Validate(stageRequest{Stage: 9, Kind: "spam"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 2)
	assert.Contains(t, vErr.Errors, "stage")
	assert.Contains(t, vErr.Errors, "kind")
}
