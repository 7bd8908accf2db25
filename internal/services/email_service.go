package services

import (
	"context"
	"strings"

	"bountyboard_backend/internal/email"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/models"
)

// EmailService отправляет письма-дубли уведомлений. Ошибки отправки только
// логируются: письмо не должно откатывать основную операцию.
type EmailService struct {
	provider email.Provider
	siteURL  string
}

func NewEmailService(provider email.Provider, siteURL string) *EmailService {
	return &EmailService{
		provider: provider,
		siteURL:  strings.TrimRight(siteURL, "/"),
	}
}

func (s *EmailService) SendFulfillmentAccepted(ctx context.Context, to *models.User, bounty *models.Bounty) {
	s.send(ctx, to, "Your submission was accepted", email.TemplateFulfillmentAccepted, email.TemplateData{
		"Name":        displayName(to),
		"BountyTitle": bounty.Title,
		"Link":        s.siteURL + bountyLink(bounty.ID),
	})
}

func (s *EmailService) SendRatingIssued(ctx context.Context, to *models.User, bounty *models.Bounty, rating int) {
	s.send(ctx, to, "You received a new rating", email.TemplateRatingIssued, email.TemplateData{
		"Name":        displayName(to),
		"BountyTitle": bounty.Title,
		"Rating":      rating,
		"Link":        s.siteURL + bountyLink(bounty.ID),
	})
}

func (s *EmailService) send(ctx context.Context, to *models.User, subject, tpl string, data email.TemplateData) {
	if s == nil || s.provider == nil || to == nil || to.Email == "" {
		return
	}
	if err := s.provider.SendTemplate([]string{to.Email}, subject, tpl, data); err != nil {
		logger.CtxWithError(ctx, "Failed to send email", err, "template", tpl, "user_id", to.ID)
	}
}

func displayName(u *models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.PublicAddress
}
