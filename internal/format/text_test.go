package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortenURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://www.github.com/", "github.com"},
		{"http://example.com/a/b", "example.com/a/b"},
		{"example.com", "example.com"},
		{"https://github.com/bounties-network/bounties-explorer/pull/1234", "github.com/bounties-network/bounties-..."},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShortenURL(tc.in), tc.in)
	}
}

func TestShortenFileName(t *testing.T) {
	assert.Equal(t, "report.zip", ShortenFileName("report.zip"))
	assert.Equal(t, "quarterly_re....zip", ShortenFileName("quarterly_report_final_v2.zip"))
	assert.Equal(t, "aaaaaaaaaaaa...", ShortenFileName("aaaaaaaaaaaaaaaaaaaaaaaaa"))
	assert.Equal(t, "holiday_phot....jpeg", ShortenFileName("holiday_photos_from_2024.jpeg"))
}

func TestShortenFileName_LongExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.extremelylongextension_xyz", "a.extremelylongex..."},
		{".gitignore_really_long_name", ".gitignore_really..."},
		{"backup.2024-10-19T12-00-00", "backup.2024-10-19..."},
	}

	for _, tt := range tests {
		got := ShortenFileName(tt.name)
		assert.Equal(t, tt.want, got, tt.name)
		assert.LessOrEqual(t, len([]rune(got)), maxFileNameLength, tt.name)
	}
}

func TestHasImageExtension(t *testing.T) {
	exts := []string{"png", ".JPG"}

	assert.True(t, HasImageExtension("report.png", exts))
	assert.True(t, HasImageExtension("Photo.PNG", exts))
	assert.True(t, HasImageExtension("shot.jpg", exts))
	assert.False(t, HasImageExtension("report.zip", exts))
	assert.False(t, HasImageExtension("png", exts))
	assert.False(t, HasImageExtension("", exts))
}

func TestAttachmentURL(t *testing.T) {
	assert.Equal(t, "https://ipfs.infura.io/ipfs/QmHash/report.png",
		AttachmentURL("https://ipfs.infura.io/ipfs/", "QmHash", "report.png"))
	assert.Equal(t, "https://gw/QmHash/my%20file.zip", AttachmentURL("https://gw", "QmHash", "my file.zip"))
}

func TestFormatDate(t *testing.T) {
	created := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "03/09/2024", FormatDate(created, time.UTC, "01/02/2006"))
	assert.Equal(t, "10.03.2024", FormatDate(created, tokyo, "02.01.2006"), "converted to viewer-local date")
	assert.Equal(t, "", FormatDate(time.Time{}, time.UTC, "01/02/2006"))
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "3 hours ago", RelativeAge(now.Add(-3*time.Hour), now))
}
