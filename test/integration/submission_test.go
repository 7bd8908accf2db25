package integration_test

import (
	"net/http"
	"testing"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/testutil"
	"bountyboard_backend/internal/view"
	"bountyboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionList struct {
	Submissions []view.SubmissionView `json:"submissions"`
	Total       int                   `json:"total"`
}

// TestSubmission_AcceptFlow - исполнитель сдаёт работу, владелец её принимает.
func TestSubmission_AcceptFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	sc := helpers.CreateBountyScenario(t, ts)
	base := "/api/v1/bounties/" + sc.Bounty.ID + "/submissions"

	// 1. Исполнитель сдаёт работу
	res, body := ts.SendRequest(t, http.MethodPost, base, sc.HunterToken, map[string]string{
		"url":         "https://github.com/example/repo/pull/7",
		"description": "Fixed, see **PR**",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created struct {
		ID       string `json:"id"`
		Accepted bool   `json:"accepted"`
	}
	helpers.ParseJSON(t, body, &created)
	assert.False(t, created.Accepted)

	// 2. Аноним видит работу без действий и без почты
	res, body = ts.SendRequest(t, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var anon submissionList
	helpers.ParseJSON(t, body, &anon)
	require.Len(t, anon.Submissions, 1)
	assert.Nil(t, anon.Submissions[0].Action)
	assert.Empty(t, anon.Submissions[0].ContactEmail)
	assert.Contains(t, anon.Submissions[0].DescriptionHTML, "<strong>PR</strong>")
	require.NotNil(t, anon.Submissions[0].Link)
	assert.Equal(t, "github.com/example/repo/pull/7", anon.Submissions[0].Link.Text)

	// 3. Владелец видит кнопку "принять"
	res, body = ts.SendRequest(t, http.MethodGet, base, sc.OwnerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var owned submissionList
	helpers.ParseJSON(t, body, &owned)
	require.NotNil(t, owned.Submissions[0].Action)
	assert.Equal(t, view.ActionAccept, owned.Submissions[0].Action.Kind)
	assert.Equal(t, "hunter@example.com", owned.Submissions[0].ContactEmail)

	// 4. Принять может только владелец
	acceptPath := owned.Submissions[0].Action.Endpoint
	res, body = ts.SendRequest(t, http.MethodPost, acceptPath, sc.HunterToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, acceptPath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, acceptPath, sc.OwnerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, acceptPath, sc.OwnerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// 5. После принятия владельцу предлагается оценка
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/fulfillments/"+created.ID, sc.OwnerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var one view.SubmissionView
	helpers.ParseJSON(t, body, &one)
	require.NotNil(t, one.Action)
	assert.Equal(t, view.ActionRateFulfiller, one.Action.Kind)
	assert.True(t, one.StagePill.Accepted)
}

func TestSubmission_CreateRules(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	sc := helpers.CreateBountyScenario(t, ts)
	base := "/api/v1/bounties/" + sc.Bounty.ID + "/submissions"
	valid := map[string]string{"description": "done"}

	res, body := ts.SendRequest(t, http.MethodPost, base, sc.OwnerToken, valid)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, base, sc.HunterToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, base, sc.HunterToken, map[string]string{"url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	draft := testutil.CreateBounty(t, ts.DB, sc.Owner, models.BountyStageDraft)
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/bounties/"+draft.ID+"/submissions", sc.HunterToken, valid)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/bounties/missing/submissions", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestSubmission_AttachmentAndLocale(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	sc := helpers.CreateBountyScenario(t, ts)
	base := "/api/v1/bounties/" + sc.Bounty.ID + "/submissions"

	res, body := ts.SendRequest(t, http.MethodPost, base, sc.HunterToken, map[string]string{
		"data_hash":      "QmScreenshot",
		"data_file_name": "report.png",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequestWithHeaders(t, http.MethodGet, base+"?tz=Europe/Moscow", "", nil, map[string]string{
		"Accept-Language": "ru-RU,ru;q=0.9",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var list submissionList
	helpers.ParseJSON(t, body, &list)
	require.Len(t, list.Submissions, 1)

	sub := list.Submissions[0]
	require.NotNil(t, sub.Attachment)
	assert.Equal(t, view.AttachmentImage, sub.Attachment.Kind)
	assert.Equal(t, "https://ipfs.infura.io/ipfs/QmScreenshot/report.png", sub.Attachment.URL)
	assert.Equal(t, "Активно", sub.StagePill.Label)
	assert.Regexp(t, `^\d{2}\.\d{2}\.\d{4}$`, sub.CreatedDate)
}
