package services

import (
	"context"
	"errors"
	"time"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/metrics"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/internal/view"
	"bountyboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SubmissionService interface {
	ListBountySubmissions(ctx context.Context, db *gorm.DB, bountyID, viewerID string, rc view.RenderContext) ([]view.SubmissionView, error)
	GetSubmission(ctx context.Context, db *gorm.DB, fulfillmentID, viewerID string, rc view.RenderContext) (*view.SubmissionView, error)
	CreateSubmission(ctx context.Context, db *gorm.DB, userID, bountyID string, req *dto.CreateSubmissionRequest) (*dto.FulfillmentResponse, error)
	AcceptFulfillment(ctx context.Context, db *gorm.DB, userID, fulfillmentID string) (*dto.FulfillmentResponse, error)
}

type submissionService struct {
	bountyRepo          repositories.BountyRepository
	fulfillmentRepo     repositories.FulfillmentRepository
	notificationService NotificationService
	emailService        *EmailService
	presenter           *view.Presenter
}

func NewSubmissionService(
	bountyRepo repositories.BountyRepository,
	fulfillmentRepo repositories.FulfillmentRepository,
	notificationService NotificationService,
	emailService *EmailService,
	presenter *view.Presenter,
) SubmissionService {
	return &submissionService{
		bountyRepo:          bountyRepo,
		fulfillmentRepo:     fulfillmentRepo,
		notificationService: notificationService,
		emailService:        emailService,
		presenter:           presenter,
	}
}

// ---------------- Read side ----------------

func (s *submissionService) ListBountySubmissions(ctx context.Context, db *gorm.DB, bountyID, viewerID string, rc view.RenderContext) ([]view.SubmissionView, error) {
	bounty, err := s.bountyRepo.FindByID(db, bountyID)
	if err != nil {
		return nil, handleBountyError(err)
	}

	list, err := s.fulfillmentRepo.FindByBounty(db, bountyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]view.SubmissionView, 0, len(list))
	for i := range list {
		views = append(views, s.render(rc, &list[i], bounty, viewerID))
	}
	return views, nil
}

func (s *submissionService) GetSubmission(ctx context.Context, db *gorm.DB, fulfillmentID, viewerID string, rc view.RenderContext) (*view.SubmissionView, error) {
	f, err := s.fulfillmentRepo.FindByID(db, fulfillmentID)
	if err != nil {
		return nil, handleFulfillmentError(err)
	}
	v := s.render(rc, f, &f.Bounty, viewerID)
	return &v, nil
}

func (s *submissionService) render(rc view.RenderContext, f *models.Fulfillment, bounty *models.Bounty, viewerID string) view.SubmissionView {
	viewer := view.ViewerContext{
		IsBountyOwner: viewerID != "" && viewerID == bounty.OwnerID,
		IsSubmitter:   viewerID != "" && viewerID == f.FulfillerID,
	}
	v := s.presenter.Submission(rc, toViewSubmission(f), toViewBounty(bounty), viewer)

	kind := view.ActionNone
	if v.Action != nil {
		kind = v.Action.Kind
	}
	metrics.ActionsOffered.WithLabelValues(string(kind)).Inc()
	return v
}

// ---------------- Write side ----------------

func (s *submissionService) CreateSubmission(ctx context.Context, db *gorm.DB, userID, bountyID string, req *dto.CreateSubmissionRequest) (*dto.FulfillmentResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	bounty, err := s.bountyRepo.FindByID(tx, bountyID)
	if err != nil {
		return nil, handleBountyError(err)
	}
	if bounty.OwnerID == userID {
		return nil, apperrors.ErrOwnerCannotSubmit
	}
	if !bounty.AcceptsSubmissions() {
		return nil, apperrors.ErrBountyNotAcceptingSubmissions
	}

	f := &models.Fulfillment{
		BountyID:     bounty.ID,
		FulfillerID:  userID,
		URL:          req.URL,
		Description:  req.Description,
		DataHash:     req.DataHash,
		DataFileName: req.DataFileName,
	}
	if err := s.fulfillmentRepo.Create(tx, f); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Submission created", "fulfillment_id", f.ID, "bounty_id", bounty.ID)

	// уведомление не должно ломать уже созданную работу
	if err := s.notificationService.Notify(ctx, db, &dto.NotifyRequest{
		UserID:      bounty.OwnerID,
		Kind:        models.NotificationFulfillmentSubmitted,
		BountyID:    bounty.ID,
		BountyTitle: bounty.Title,
		FromUserID:  userID,
		Link:        bountyLink(bounty.ID),
		Data:        map[string]any{"fulfillment_id": f.ID},
	}); err != nil {
		logger.CtxWithError(ctx, "Failed to notify bounty owner", err, "bounty_id", bounty.ID)
	}

	return buildFulfillmentResponse(f), nil
}

func (s *submissionService) AcceptFulfillment(ctx context.Context, db *gorm.DB, userID, fulfillmentID string) (*dto.FulfillmentResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	f, err := s.fulfillmentRepo.FindByID(tx, fulfillmentID)
	if err != nil {
		return nil, handleFulfillmentError(err)
	}
	if f.Bounty.OwnerID != userID {
		return nil, apperrors.ErrNotBountyOwner
	}
	if f.Accepted {
		return nil, apperrors.ErrAlreadyAccepted
	}
	if !f.Bounty.CanAcceptFulfillments() {
		return nil, apperrors.ErrFulfillmentNotAcceptable
	}

	now := time.Now()
	if err := s.fulfillmentRepo.MarkAccepted(tx, f.ID, now); err != nil {
		return nil, handleFulfillmentError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	f.Accepted = true
	f.AcceptedAt = &now
	logger.CtxInfo(ctx, "Submission accepted", "fulfillment_id", f.ID, "bounty_id", f.BountyID)

	if err := s.notificationService.Notify(ctx, db, &dto.NotifyRequest{
		UserID:      f.FulfillerID,
		Kind:        models.NotificationFulfillmentAccepted,
		BountyID:    f.BountyID,
		BountyTitle: f.Bounty.Title,
		FromUserID:  userID,
		Link:        bountyLink(f.BountyID),
		Data:        map[string]any{"fulfillment_id": f.ID},
	}); err != nil {
		logger.CtxWithError(ctx, "Failed to notify fulfiller", err, "fulfillment_id", f.ID)
	}
	s.emailService.SendFulfillmentAccepted(ctx, &f.Fulfiller, &f.Bounty)

	return buildFulfillmentResponse(f), nil
}

// ---------------- helpers ----------------

func toViewSubmission(f *models.Fulfillment) view.Submission {
	s := view.Submission{
		ID:       f.ID,
		BountyID: f.BountyID,
		Fulfiller: view.Identity{
			Name:     f.Fulfiller.Name,
			Address:  f.Fulfiller.PublicAddress,
			Email:    f.Fulfiller.Email,
			ImageURL: f.Fulfiller.SmallProfileImageURL,
		},
		URL:         f.URL,
		Description: f.Description,
		FileHash:    f.DataHash,
		FileName:    f.DataFileName,
		Accepted:    f.Accepted,
		CreatedAt:   f.CreatedAt,
	}
	// отзыв владельца баунти - это оценка исполнителя, и наоборот
	if r := f.ReviewBy(models.ReviewRoleIssuer); r != nil {
		s.FulfillerReview = &view.Review{Rating: r.Rating, Text: r.ReviewText}
	}
	if r := f.ReviewBy(models.ReviewRoleFulfiller); r != nil {
		s.IssuerReview = &view.Review{Rating: r.Rating, Text: r.ReviewText}
	}
	return s
}

func toViewBounty(b *models.Bounty) view.Bounty {
	return view.Bounty{
		Stage: b.Stage,
		Owner: view.Identity{
			Name:     b.Owner.Name,
			Address:  b.Owner.PublicAddress,
			ImageURL: b.Owner.SmallProfileImageURL,
		},
	}
}

func buildFulfillmentResponse(f *models.Fulfillment) *dto.FulfillmentResponse {
	return &dto.FulfillmentResponse{
		ID:           f.ID,
		BountyID:     f.BountyID,
		FulfillerID:  f.FulfillerID,
		URL:          f.URL,
		Description:  f.Description,
		DataHash:     f.DataHash,
		DataFileName: f.DataFileName,
		Accepted:     f.Accepted,
		AcceptedAt:   f.AcceptedAt,
		CreatedAt:    f.CreatedAt,
	}
}

func handleBountyError(err error) error {
	if errors.Is(err, repositories.ErrBountyNotFound) {
		return apperrors.ErrBountyNotFound
	}
	return apperrors.DatabaseError(err)
}

func handleFulfillmentError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrFulfillmentNotFound):
		return apperrors.ErrFulfillmentNotFound
	case errors.Is(err, repositories.ErrAlreadyAccepted):
		return apperrors.ErrAlreadyAccepted
	}
	return apperrors.DatabaseError(err)
}
