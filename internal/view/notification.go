package view

import (
	"time"

	"bountyboard_backend/internal/format"
	"bountyboard_backend/internal/i18n"
	"bountyboard_backend/internal/models"
)

type PanelState string

const (
	PanelLoading   PanelState = "loading"
	PanelError     PanelState = "error"
	PanelEmpty     PanelState = "empty"
	PanelPopulated PanelState = "populated"
)

// NotificationItem is one entry of the loaded feed.
type NotificationItem struct {
	ID          string
	Kind        models.NotificationKind
	BountyTitle string
	Link        string
	FromUser    *Identity
	CreatedAt   time.Time
	Viewed      bool
}

// Feed is what the client has loaded so far.
type Feed struct {
	Items         []NotificationItem
	TotalCount    int
	IsLoadingMore bool
	IsLoaded      bool
	HasError      bool
}

type Control struct {
	Label    string `json:"label"`
	Method   string `json:"method"`
	Endpoint string `json:"endpoint"`
}

type LoadMoreControl struct {
	Label      string `json:"label"`
	Loading    bool   `json:"loading"`
	NextOffset int    `json:"next_offset"`
	Endpoint   string `json:"endpoint"`
}

type Placeholder struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

type NotificationItemView struct {
	ID           string                  `json:"id"`
	Kind         models.NotificationKind `json:"kind"`
	Message      string                  `json:"message"`
	BountyTitle  string                  `json:"bounty_title"`
	Link         string                  `json:"link"`
	Age          string                  `json:"age"`
	CreatedAt    time.Time               `json:"created_at"`
	UserAddress  string                  `json:"user_address,omitempty"`
	ProfileImage string                  `json:"profile_image,omitempty"`
	Viewed       bool                    `json:"viewed"`
}

type Panel struct {
	State       PanelState             `json:"state"`
	Title       string                 `json:"title"`
	HasUnread   bool                   `json:"has_unread"`
	TotalCount  int                    `json:"total_count"`
	MarkAllRead *Control               `json:"mark_all_read,omitempty"`
	Items       []NotificationItemView `json:"items"`
	LoadMore    *LoadMoreControl       `json:"load_more,omitempty"`
	Placeholder *Placeholder           `json:"placeholder,omitempty"`
	Loader      bool                   `json:"loader"`
}

const notificationsEndpoint = "/api/v1/notifications"

// NotificationPanel renders the panel. Precedence of states is
// error > loading > empty > populated.
func (p *Presenter) NotificationPanel(rc RenderContext, feed Feed) Panel {
	l := rc.Localizer

	total := feed.TotalCount
	if total < len(feed.Items) {
		total = len(feed.Items)
	}

	panel := Panel{
		State:      panelState(feed, total),
		Title:      l.Get(i18n.KeyNotificationsTitle),
		HasUnread:  HasUnread(feed.Items),
		TotalCount: total,
		Items:      []NotificationItemView{},
	}

	switch panel.State {
	case PanelError:
		panel.Placeholder = &Placeholder{Text: l.Get(i18n.KeyServerError)}
		return panel
	case PanelLoading:
		panel.Loader = true
		return panel
	case PanelEmpty:
		panel.Placeholder = &Placeholder{
			Title: l.Get(i18n.KeyZeroStateTitle),
			Text:  l.Get(i18n.KeyZeroStateText),
		}
		return panel
	}

	if panel.HasUnread {
		panel.MarkAllRead = &Control{
			Label:    l.Get(i18n.KeyMarkRead),
			Method:   "PUT",
			Endpoint: notificationsEndpoint + "/viewed-all",
		}
	}

	panel.Items = make([]NotificationItemView, 0, len(feed.Items))
	for _, item := range feed.Items {
		panel.Items = append(panel.Items, notificationItemView(rc, item))
	}

	if total > len(feed.Items) {
		panel.LoadMore = &LoadMoreControl{
			Label:      l.Get(i18n.KeyLoadMore),
			Loading:    feed.IsLoadingMore,
			NextOffset: len(feed.Items),
			Endpoint:   notificationsEndpoint,
		}
	}

	return panel
}

func panelState(feed Feed, total int) PanelState {
	switch {
	case feed.HasError:
		return PanelError
	case !feed.IsLoaded:
		return PanelLoading
	case total == 0:
		return PanelEmpty
	default:
		return PanelPopulated
	}
}

func notificationItemView(rc RenderContext, n NotificationItem) NotificationItemView {
	v := NotificationItemView{
		ID:          n.ID,
		Kind:        n.Kind,
		Message:     rc.Localizer.Get(i18n.KeyNotificationPrefix + string(n.Kind)),
		BountyTitle: n.BountyTitle,
		Link:        n.Link,
		Age:         format.RelativeAge(n.CreatedAt, rc.Now),
		CreatedAt:   n.CreatedAt,
		Viewed:      n.Viewed,
	}
	if n.FromUser != nil {
		v.UserAddress = n.FromUser.Address
		v.ProfileImage = n.FromUser.ImageURL
	}
	return v
}

// HasUnread reports whether any item has not been viewed.
func HasUnread(items []NotificationItem) bool {
	for _, n := range items {
		if !n.Viewed {
			return true
		}
	}
	return false
}

// MarkViewed returns a copy of items with the matching item viewed.
// The input slice is left untouched.
func MarkViewed(items []NotificationItem, id string) []NotificationItem {
	out := make([]NotificationItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Viewed = true
		}
	}
	return out
}

// MarkAllViewed returns a copy of items with every item viewed.
func MarkAllViewed(items []NotificationItem) []NotificationItem {
	out := make([]NotificationItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Viewed = true
	}
	return out
}
