package view

import (
	"testing"
	"time"

	"bountyboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func items(n int, viewed bool) []NotificationItem {
	out := make([]NotificationItem, n)
	for i := range out {
		out[i] = NotificationItem{
			ID:          string(rune('a' + i)),
			Kind:        models.NotificationFulfillmentSubmitted,
			BountyTitle: "Fix the bug",
			Link:        "/bounty/1",
			CreatedAt:   time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
			Viewed:      viewed,
		}
	}
	return out
}

func TestNotificationPanel_LoadMoreVisibility(t *testing.T) {
	p := newPresenter()
	rc := renderContext(language.English)

	panel := p.NotificationPanel(rc, Feed{Items: items(5, true), TotalCount: 10, IsLoaded: true})
	assert.Equal(t, PanelPopulated, panel.State)
	require.NotNil(t, panel.LoadMore)
	assert.Equal(t, 5, panel.LoadMore.NextOffset)
	assert.False(t, panel.LoadMore.Loading)
	assert.Equal(t, "Load more", panel.LoadMore.Label)

	panel = p.NotificationPanel(rc, Feed{Items: items(5, true), TotalCount: 10, IsLoaded: true, IsLoadingMore: true})
	require.NotNil(t, panel.LoadMore)
	assert.True(t, panel.LoadMore.Loading)

	panel = p.NotificationPanel(rc, Feed{Items: items(5, true), TotalCount: 5, IsLoaded: true})
	assert.Nil(t, panel.LoadMore)
}

func TestNotificationPanel_TotalNeverBelowLoadedItems(t *testing.T) {
	panel := newPresenter().NotificationPanel(renderContext(language.English),
		Feed{Items: items(3, true), TotalCount: 0, IsLoaded: true})

	assert.Equal(t, PanelPopulated, panel.State)
	assert.Equal(t, 3, panel.TotalCount)
	assert.Nil(t, panel.LoadMore)
}

func TestNotificationPanel_EmptyState(t *testing.T) {
	panel := newPresenter().NotificationPanel(renderContext(language.English),
		Feed{Items: []NotificationItem{}, IsLoaded: true})

	assert.Equal(t, PanelEmpty, panel.State)
	require.NotNil(t, panel.Placeholder)
	assert.Equal(t, "You're all caught up", panel.Placeholder.Title)
	assert.False(t, panel.Loader)
	assert.Empty(t, panel.Items)
	assert.Nil(t, panel.MarkAllRead)
}

func TestNotificationPanel_ErrorBeatsLoading(t *testing.T) {
	p := newPresenter()
	rc := renderContext(language.English)

	panel := p.NotificationPanel(rc, Feed{HasError: true})
	assert.Equal(t, PanelError, panel.State)
	require.NotNil(t, panel.Placeholder)
	assert.Equal(t, "Something went wrong. Please try again later.", panel.Placeholder.Text)

	panel = p.NotificationPanel(rc, Feed{})
	assert.Equal(t, PanelLoading, panel.State)
	assert.True(t, panel.Loader)
	assert.Nil(t, panel.Placeholder)
}

func TestNotificationPanel_MarkAllReadOnlyWithUnread(t *testing.T) {
	p := newPresenter()
	rc := renderContext(language.English)

	feed := Feed{Items: items(2, true), TotalCount: 2, IsLoaded: true}
	panel := p.NotificationPanel(rc, feed)
	assert.False(t, panel.HasUnread)
	assert.Nil(t, panel.MarkAllRead)

	feed.Items = MarkViewed(items(2, false), "a")
	panel = p.NotificationPanel(rc, feed)
	assert.True(t, panel.HasUnread)
	require.NotNil(t, panel.MarkAllRead)
	assert.Equal(t, "/api/v1/notifications/viewed-all", panel.MarkAllRead.Endpoint)
}

func TestNotificationPanel_ItemRendering(t *testing.T) {
	in := items(1, false)
	in[0].FromUser = &Identity{Address: "0xhunter", ImageURL: "https://img/hunter.png"}

	panel := newPresenter().NotificationPanel(renderContext(language.Russian),
		Feed{Items: in, TotalCount: 1, IsLoaded: true})

	require.Len(t, panel.Items, 1)
	item := panel.Items[0]
	assert.Equal(t, "Получена новая работа", item.Message)
	assert.Equal(t, "3 hours ago", item.Age)
	assert.Equal(t, "0xhunter", item.UserAddress)
	assert.Equal(t, "Fix the bug", item.BountyTitle)
	assert.False(t, item.Viewed)
	assert.Equal(t, "Уведомления", panel.Title)
}

func TestMarkViewed_LeavesOthersUntouched(t *testing.T) {
	in := items(3, false)
	out := MarkViewed(in, "b")

	assert.True(t, out[1].Viewed)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[2], out[2])
	// входной срез не меняется
	assert.False(t, in[1].Viewed)
}

func TestMarkViewed_UnknownID(t *testing.T) {
	in := items(2, false)
	assert.Equal(t, in, MarkViewed(in, "zzz"))
}

func TestMarkAllViewed(t *testing.T) {
	in := items(3, false)
	out := MarkAllViewed(in)

	assert.False(t, HasUnread(out))
	assert.True(t, HasUnread(in))
}
