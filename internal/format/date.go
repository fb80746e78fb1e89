package format

import (
	"strings"
	"time"
)

// FormatDate renders t in the locale layout. The zero time renders as "".
func (l Locale) FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(l.location()).Format(l.DateLayout)
}

// ToISODate renders t as YYYY-MM-DD in the locale time zone.
func (l Locale) ToISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(l.location()).Format(ISODateLayout)
}

// ParseDate accepts the locale layout, ISO dates and RFC 3339 timestamps.
// Anything else yields the zero time.
func (l Locale) ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{l.DateLayout, ISODateLayout} {
		if layout == "" {
			continue
		}
		if t, err := time.ParseInLocation(layout, s, l.location()); err == nil {
			return t
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
