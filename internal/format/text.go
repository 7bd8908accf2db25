package format

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	maxURLLength      = 40
	maxFileNameLength = 20
	fileStemLength    = 12
	ellipsis          = "..."
)

// DefaultImageExtensions are rendered as inline previews.
var DefaultImageExtensions = []string{"png", "jpg", "jpeg", "gif", "svg", "webp", "bmp"}

// ShortenURL drops the scheme, a leading "www." and a trailing slash, then
// truncates to 40 runes.
func ShortenURL(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")
	return truncate(s, maxURLLength)
}

// ShortenFileName keeps the extension visible: "very_long_report_final.zip"
// becomes "very_long_re....zip". An extension too long to fit is cut
// together with the rest of the name.
func ShortenFileName(name string) string {
	if len([]rune(name)) <= maxFileNameLength {
		return name
	}
	ext := path.Ext(name)
	if len([]rune(ext)) > maxFileNameLength-fileStemLength-len(ellipsis) {
		return truncate(name, maxFileNameLength)
	}
	stem := []rune(strings.TrimSuffix(name, ext))
	if len(stem) > fileStemLength {
		stem = stem[:fileStemLength]
	}
	return string(stem) + ellipsis + ext
}

// HasImageExtension reports whether the file extension is in exts
// (case-insensitive, with or without the leading dot).
func HasImageExtension(name string, exts []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.EqualFold(strings.TrimPrefix(e, "."), ext) {
			return true
		}
	}
	return false
}

// AttachmentURL builds the gateway URL of an uploaded file.
func AttachmentURL(gateway, hash, name string) string {
	return strings.TrimRight(gateway, "/") + "/" + hash + "/" + url.PathEscape(name)
}

// FormatDate renders t in the viewer's location. A zero time renders empty.
func FormatDate(t time.Time, loc *time.Location, layout string) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(layout)
}

// RelativeAge renders "3 hours ago" style ages.
func RelativeAge(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-len(ellipsis)]) + ellipsis
}
