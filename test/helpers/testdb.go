package helpers

import (
	"encoding/json"
	"testing"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/testutil"
)

// CreateAndLoginUser создаёт пользователя и выдаёт ему токен.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, address string) (string, *models.User) {
	t.Helper()
	user := testutil.CreateUser(t, ts.DB, name, address)
	return ts.Token(t, user.ID, user.PublicAddress), user
}

// BountyScenario - владелец с активным баунти и исполнитель.
type BountyScenario struct {
	Owner       *models.User
	OwnerToken  string
	Hunter      *models.User
	HunterToken string
	Bounty      *models.Bounty
}

func CreateBountyScenario(t *testing.T, ts *TestServer) *BountyScenario {
	t.Helper()
	ownerToken, owner := CreateAndLoginUser(t, ts, "owner", "0xowner")
	hunterToken, hunter := CreateAndLoginUser(t, ts, "hunter", "0xhunter")
	return &BountyScenario{
		Owner:       owner,
		OwnerToken:  ownerToken,
		Hunter:      hunter,
		HunterToken: hunterToken,
		Bounty:      testutil.CreateBounty(t, ts.DB, owner, models.BountyStageActive),
	}
}

func ParseJSON(t *testing.T, body string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), v); err != nil {
		t.Fatalf("failed to parse response %q: %v", body, err)
	}
}
