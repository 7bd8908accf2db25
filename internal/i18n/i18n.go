// Package i18n replaces the global string lookup of the web client with an
// explicit Localizer that is negotiated per request and passed into the
// presenters.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer resolves UI strings for one language.
type Localizer interface {
	Get(key string) string
	Tag() language.Tag
	// DateLayout is the short date layout (moment's "L") for the language.
	DateLayout() string
}

// Bundle holds the catalog of every supported language.
type Bundle struct {
	catalog *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
	layouts map[language.Tag]string
}

// NewBundle builds the catalog with English as the fallback language.
func NewBundle() (*Bundle, error) {
	b := &Bundle{
		catalog: catalog.NewBuilder(catalog.Fallback(language.English)),
		tags:    []language.Tag{language.English, language.Russian},
		layouts: map[language.Tag]string{
			language.English: "01/02/2006",
			language.Russian: "02.01.2006",
		},
	}

	for tag, strings := range map[language.Tag]map[string]string{
		language.English: english,
		language.Russian: russian,
	} {
		// every key is registered for every language; untranslated ones fall back to English
		for key, fallback := range english {
			msg, ok := strings[key]
			if !ok {
				msg = fallback
			}
			if err := b.catalog.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("i18n: register %s/%s: %w", tag, key, err)
			}
		}
	}

	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// MustNewBundle is NewBundle for package-level wiring and tests.
func MustNewBundle() *Bundle {
	b, err := NewBundle()
	if err != nil {
		panic(err)
	}
	return b
}

// For returns the localizer of the closest supported language.
func (b *Bundle) For(tag language.Tag) Localizer {
	_, idx, _ := b.matcher.Match(tag)
	return b.localizer(b.tags[idx])
}

// Match negotiates a language from ?lang= values or Accept-Language headers.
// Unparseable input falls back to English.
func (b *Bundle) Match(preferences ...string) Localizer {
	_, idx := language.MatchStrings(b.matcher, preferences...)
	return b.localizer(b.tags[idx])
}

func (b *Bundle) localizer(tag language.Tag) Localizer {
	return &localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.catalog)),
		layout:  b.layouts[tag],
	}
}

type localizer struct {
	tag     language.Tag
	printer *message.Printer
	layout  string
}

func (l *localizer) Get(key string) string {
	return l.printer.Sprintf(key)
}

func (l *localizer) Tag() language.Tag {
	return l.tag
}

func (l *localizer) DateLayout() string {
	return l.layout
}
