package view

import (
	"html"

	"bountyboard_backend/internal/format"
	"bountyboard_backend/internal/i18n"
	"bountyboard_backend/internal/models"
)

type AttachmentKind string

const (
	AttachmentImage   AttachmentKind = "image"
	AttachmentArchive AttachmentKind = "archive"
)

type LinkView struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// AttachmentView is an inline preview for images and a download link for
// everything else.
type AttachmentView struct {
	Kind     AttachmentKind `json:"kind"`
	Label    string         `json:"label"`
	URL      string         `json:"url"`
	FileName string         `json:"file_name"`
	// Text is the shortened link text of an archive. Empty for images.
	Text string `json:"text,omitempty"`
	// Alt is the preview alt text of an image. Empty for archives.
	Alt string `json:"alt,omitempty"`
}

type StagePill struct {
	Accepted bool   `json:"accepted"`
	Stage    string `json:"stage"`
	Label    string `json:"label"`
}

type SubmissionView struct {
	ID               string          `json:"id"`
	BountyID         string          `json:"bounty_id"`
	Fulfiller        Identity        `json:"fulfiller"`
	ProfileLink      string          `json:"profile_link"`
	ContactEmail     string          `json:"contact_email,omitempty"`
	CreatedDate      string          `json:"created_date"`
	StagePill        StagePill       `json:"stage_pill"`
	Action           *Action         `json:"action,omitempty"`
	Link             *LinkView       `json:"link,omitempty"`
	DescriptionLabel string          `json:"description_label"`
	DescriptionHTML  string          `json:"description_html"`
	Attachment       *AttachmentView `json:"attachment,omitempty"`
}

// Presenter turns read models into view models. It holds configuration only,
// everything viewer specific arrives through RenderContext.
type Presenter struct {
	markdown        format.MarkdownRenderer
	gateway         string
	imageExtensions []string
}

func NewPresenter(md format.MarkdownRenderer, gateway string, imageExtensions []string) *Presenter {
	if len(imageExtensions) == 0 {
		imageExtensions = format.DefaultImageExtensions
	}
	return &Presenter{
		markdown:        md,
		gateway:         gateway,
		imageExtensions: imageExtensions,
	}
}

func (p *Presenter) Submission(rc RenderContext, s Submission, b Bounty, v ViewerContext) SubmissionView {
	l := rc.Localizer

	out := SubmissionView{
		ID:       s.ID,
		BountyID: s.BountyID,
		Fulfiller: Identity{
			Name:     s.Fulfiller.Name,
			Address:  s.Fulfiller.Address,
			ImageURL: s.Fulfiller.ImageURL,
		},
		ProfileLink:      "/profile/" + s.Fulfiller.Address,
		CreatedDate:      format.FormatDate(s.CreatedAt, rc.Location, l.DateLayout()),
		StagePill:        stagePill(l, s.Accepted, b.Stage),
		DescriptionLabel: l.Get(i18n.KeyDescription),
		DescriptionHTML:  p.description(l, s.Description),
	}

	// контакт исполнителя видит только владелец баунти
	if v.IsBountyOwner {
		out.ContactEmail = s.Fulfiller.Email
	}

	if action := SelectAction(s, b, v); action.Kind != ActionNone {
		action.Label = actionLabel(l, action.Kind)
		out.Action = &action
	}

	if s.URL != "" {
		out.Link = &LinkView{Href: s.URL, Text: format.ShortenURL(s.URL)}
	}

	if s.FileHash != "" {
		out.Attachment = p.attachment(l, s.FileHash, s.FileName)
	}

	return out
}

func (p *Presenter) description(l i18n.Localizer, src string) string {
	if src == "" {
		src = l.Get(i18n.KeyNotAvailable)
	}
	if p.markdown == nil {
		return html.EscapeString(src)
	}
	out, err := p.markdown.Render(src)
	if err != nil {
		return html.EscapeString(src)
	}
	return out
}

func (p *Presenter) attachment(l i18n.Localizer, hash, name string) *AttachmentView {
	a := &AttachmentView{
		Label:    l.Get(i18n.KeySubmissionFiles),
		URL:      format.AttachmentURL(p.gateway, hash, name),
		FileName: name,
	}
	if format.HasImageExtension(name, p.imageExtensions) {
		a.Kind = AttachmentImage
		a.Alt = name
	} else {
		a.Kind = AttachmentArchive
		a.Text = format.ShortenFileName(name)
	}
	return a
}

func stagePill(l i18n.Localizer, accepted bool, stage models.BountyStage) StagePill {
	if accepted {
		return StagePill{Accepted: true, Stage: "accepted", Label: l.Get(i18n.KeyFulfillmentAccepted)}
	}
	return StagePill{Stage: stage.Key(), Label: l.Get(stage.Key())}
}

func actionLabel(l i18n.Localizer, kind ActionKind) string {
	switch kind {
	case ActionAccept:
		return l.Get(i18n.KeyAccept)
	case ActionRateFulfiller:
		return l.Get(i18n.KeyRateFulfiller)
	case ActionRateIssuer:
		return l.Get(i18n.KeyRateIssuer)
	}
	return ""
}
