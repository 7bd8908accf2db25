package integration_test

import (
	"net/http"
	"testing"

	"bountyboard_backend/internal/testutil"
	"bountyboard_backend/internal/view"
	"bountyboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReview_BothSides - обе стороны принятой работы оценивают друг друга.
func TestReview_BothSides(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	sc := helpers.CreateBountyScenario(t, ts)
	pending := testutil.CreateFulfillment(t, ts.DB, sc.Bounty, sc.Hunter, false)
	accepted := testutil.CreateFulfillment(t, ts.DB, sc.Bounty, sc.Hunter, true)
	reviews := "/api/v1/fulfillments/" + accepted.ID + "/reviews"

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/fulfillments/"+pending.ID+"/reviews", sc.OwnerToken, map[string]any{"rating": 5})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, reviews, sc.OwnerToken, map[string]any{"rating": 9})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	strangerToken, _ := helpers.CreateAndLoginUser(t, ts, "stranger", "0xstranger")
	res, body = ts.SendRequest(t, http.MethodPost, reviews, strangerToken, map[string]any{"rating": 5})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, reviews, sc.OwnerToken, map[string]any{"rating": 5, "review": "Great work"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, reviews, sc.OwnerToken, map[string]any{"rating": 4})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// исполнителю теперь предлагается оценить заказчика
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/fulfillments/"+accepted.ID, sc.HunterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var sub view.SubmissionView
	helpers.ParseJSON(t, body, &sub)
	require.NotNil(t, sub.Action)
	assert.Equal(t, view.ActionRateIssuer, sub.Action.Kind)
	require.NotNil(t, sub.Action.RatingTarget)
	assert.Equal(t, "0xowner", sub.Action.RatingTarget.Address)

	res, body = ts.SendRequest(t, http.MethodPost, sub.Action.Endpoint, sc.HunterToken, map[string]any{"rating": 4})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, reviews, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var list struct {
		Total int `json:"total"`
	}
	helpers.ParseJSON(t, body, &list)
	assert.Equal(t, 2, list.Total)
}
