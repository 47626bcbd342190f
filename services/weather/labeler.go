package weather

import (
	"time"

	"golang.org/x/text/language"
)

const (
	defaultLocale = "en-US"

	clock12Layout = "03:04 PM"
	clock24Layout = "15:04"
)

// Regions whose usual clock is the 12 hour one.
var twelveHourRegions = map[string]bool{
	"US": true,
	"CA": true,
	"AU": true,
	"NZ": true,
	"IN": true,
	"PH": true,
	"EG": true,
	"SA": true,
	"PK": true,
	"BD": true,
	"MY": true,
	"CO": true,
}

// Labeler formats times as hour:minute chart labels for a display locale.
type Labeler struct {
	tag    language.Tag
	layout string
}

// NewLabeler creates a labeler for the supplied BCP 47 locale, e.g. "en-US" or "de-DE".
// Locales which can't be parsed are treated as en-US.
func NewLabeler(locale string) *Labeler {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	layout := clock24Layout
	if region, _ := tag.Region(); twelveHourRegions[region.String()] {
		layout = clock12Layout
	}
	// French Canada uses the 24 hour clock.
	if base, _ := tag.Base(); base.String() == "fr" && layout == clock12Layout {
		layout = clock24Layout
	}

	return &Labeler{
		tag:    tag,
		layout: layout,
	}
}

// Locale returns the canonical locale the labeler was built for.
func (l *Labeler) Locale() string {
	return l.tag.String()
}

// Label formats the wall-clock time of t.
func (l *Labeler) Label(t time.Time) string {
	return t.Format(l.layout)
}
