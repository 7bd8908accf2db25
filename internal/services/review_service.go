package services

import (
	"context"
	"errors"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	RateFulfillment(ctx context.Context, db *gorm.DB, userID, fulfillmentID string, req *dto.RateFulfillmentRequest) (*dto.ReviewResponse, error)
	ListFulfillmentReviews(ctx context.Context, db *gorm.DB, fulfillmentID string) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo          repositories.ReviewRepository
	fulfillmentRepo     repositories.FulfillmentRepository
	notificationService NotificationService
	emailService        *EmailService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	fulfillmentRepo repositories.FulfillmentRepository,
	notificationService NotificationService,
	emailService *EmailService,
) ReviewService {
	return &reviewService{
		reviewRepo:          reviewRepo,
		fulfillmentRepo:     fulfillmentRepo,
		notificationService: notificationService,
		emailService:        emailService,
	}
}

// RateFulfillment: владелец оценивает исполнителя (роль issuer),
// исполнитель - владельца (роль fulfiller). Только после принятия работы.
func (s *reviewService) RateFulfillment(ctx context.Context, db *gorm.DB, userID, fulfillmentID string, req *dto.RateFulfillmentRequest) (*dto.ReviewResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	f, err := s.fulfillmentRepo.FindByID(tx, fulfillmentID)
	if err != nil {
		return nil, handleFulfillmentError(err)
	}

	review := &models.Review{
		FulfillmentID: f.ID,
		ReviewerID:    userID,
		Rating:        req.Rating,
		ReviewText:    req.Review,
	}
	var reviewee *models.User
	switch userID {
	case f.Bounty.OwnerID:
		review.Role = models.ReviewRoleIssuer
		review.RevieweeID = f.FulfillerID
		reviewee = &f.Fulfiller
	case f.FulfillerID:
		review.Role = models.ReviewRoleFulfiller
		review.RevieweeID = f.Bounty.OwnerID
		reviewee = &f.Bounty.Owner
	default:
		return nil, apperrors.ErrNotReviewParticipant
	}

	if !f.Accepted {
		return nil, apperrors.ErrNotAccepted
	}

	if err := s.reviewRepo.CreateReview(tx, review); err != nil {
		if errors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrAlreadyReviewed
		}
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Rating issued", "fulfillment_id", f.ID, "role", review.Role, "rating", review.Rating)

	if err := s.notificationService.Notify(ctx, db, &dto.NotifyRequest{
		UserID:      review.RevieweeID,
		Kind:        models.NotificationRatingIssued,
		BountyID:    f.BountyID,
		BountyTitle: f.Bounty.Title,
		FromUserID:  userID,
		Link:        bountyLink(f.BountyID),
		Data:        map[string]any{"fulfillment_id": f.ID, "rating": review.Rating},
	}); err != nil {
		logger.CtxWithError(ctx, "Failed to notify reviewee", err, "fulfillment_id", f.ID)
	}
	s.emailService.SendRatingIssued(ctx, reviewee, &f.Bounty, review.Rating)

	review.Reviewee = *reviewee
	if review.Role == models.ReviewRoleIssuer {
		review.Reviewer = f.Bounty.Owner
	} else {
		review.Reviewer = f.Fulfiller
	}
	return buildReviewResponse(review), nil
}

func (s *reviewService) ListFulfillmentReviews(ctx context.Context, db *gorm.DB, fulfillmentID string) ([]*dto.ReviewResponse, error) {
	if _, err := s.fulfillmentRepo.FindByID(db, fulfillmentID); err != nil {
		return nil, handleFulfillmentError(err)
	}

	reviews, err := s.reviewRepo.FindByFulfillment(db, fulfillmentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, buildReviewResponse(&reviews[i]))
	}
	return out, nil
}

func buildReviewResponse(r *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:            r.ID,
		FulfillmentID: r.FulfillmentID,
		Role:          r.Role,
		Rating:        r.Rating,
		Review:        r.ReviewText,
		CreatedAt:     r.CreatedAt,
		Reviewer:      dto.NewUserInfo(&r.Reviewer),
		Reviewee:      dto.NewUserInfo(&r.Reviewee),
	}
}
