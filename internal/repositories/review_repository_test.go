package repositories

import (
	"testing"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_OnePerRole(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewReviewRepository()
	owner := testutil.CreateUser(t, db, "owner", "0xowner")
	hunter := testutil.CreateUser(t, db, "hunter", "0xhunter")
	bounty := testutil.CreateBounty(t, db, owner, models.BountyStageActive)
	f := testutil.CreateFulfillment(t, db, bounty, hunter, true)

	review := &models.Review{
		FulfillmentID: f.ID,
		Role:          models.ReviewRoleIssuer,
		ReviewerID:    owner.ID,
		RevieweeID:    hunter.ID,
		Rating:        5,
	}
	require.NoError(t, repo.CreateReview(db, review))

	dup := *review
	dup.ID = ""
	assert.ErrorIs(t, repo.CreateReview(db, &dup), ErrReviewAlreadyExists)

	require.NoError(t, repo.CreateReview(db, &models.Review{
		FulfillmentID: f.ID,
		Role:          models.ReviewRoleFulfiller,
		ReviewerID:    hunter.ID,
		RevieweeID:    owner.ID,
		Rating:        4,
	}))

	reviews, err := repo.FindByFulfillment(db, f.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "owner", reviews[0].Reviewer.Name)
}
