// Package i18n provides the translation catalog, locale matching and
// locale-aware formatting used by the CLI and web layers.
package i18n

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// supported lists the shipped locales. The first entry is the
// fallback for unmatched preferences.
var supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// MatchLocale resolves a locale preference (a single BCP 47 tag or an
// Accept-Language list) to the best supported tag. Unparseable or
// unknown preferences fall back to English.
func MatchLocale(pref string) language.Tag {
	if pref == "" {
		return supported[0]
	}
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil {
		return supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// MissingKeyReporter records catalog keys that were requested but not
// found, deduplicated, and logs each one once.
type MissingKeyReporter struct {
	mu   sync.Mutex
	seen map[string]struct{}
	log  *slog.Logger
}

// NewMissingKeyReporter creates a reporter. logger may be nil, in
// which case missing keys are recorded but not logged.
func NewMissingKeyReporter(logger *slog.Logger) *MissingKeyReporter {
	return &MissingKeyReporter{seen: make(map[string]struct{}), log: logger}
}

func (r *MissingKeyReporter) report(locale, key string) {
	if r == nil {
		return
	}
	entry := locale + "/" + key
	r.mu.Lock()
	_, dup := r.seen[entry]
	if !dup {
		r.seen[entry] = struct{}{}
	}
	r.mu.Unlock()
	if !dup && r.log != nil {
		r.log.Warn("missing translation", "locale", locale, "key", key)
	}
}

// Keys returns the recorded locale/key pairs, sorted.
func (r *MissingKeyReporter) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.seen))
	for k := range r.seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Translator resolves catalog keys for one matched locale, falling
// back to English before giving up and returning the key itself.
type Translator struct {
	tag      language.Tag
	table    map[string]string
	fallback map[string]string
	reporter *MissingKeyReporter
}

// NewTranslator creates a Translator for the given locale preference.
// reporter may be nil.
func NewTranslator(pref string, reporter *MissingKeyReporter) *Translator {
	tag := MatchLocale(pref)
	return &Translator{
		tag:      tag,
		table:    catalog[tag.String()],
		fallback: catalog[language.English.String()],
		reporter: reporter,
	}
}

// Tag returns the matched locale.
func (t *Translator) Tag() language.Tag { return t.tag }

// T resolves key and formats it with args. A key missing from the
// matched locale is reported and resolved from English; a key missing
// everywhere is reported and returned verbatim.
func (t *Translator) T(key string, args ...any) string {
	tmpl, ok := t.table[key]
	if !ok {
		t.reporter.report(t.tag.String(), key)
		tmpl, ok = t.fallback[key]
		if !ok {
			t.reporter.report(language.English.String(), key)
			return key
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// FormatDate renders ts in the locale's short date form.
func (t *Translator) FormatDate(ts time.Time) string {
	layout, ok := dateLayouts[t.tag.String()]
	if !ok {
		layout = dateLayouts[language.English.String()]
	}
	return ts.Format(layout)
}

// RelativeTime renders how long ago ts was, relative to now.
func (t *Translator) RelativeTime(ts, now time.Time) string {
	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return t.T("relative.now")
	case d < time.Hour:
		return t.T("relative.minutes", int(d.Minutes()))
	case d < 24*time.Hour:
		return t.T("relative.hours", int(d.Hours()))
	default:
		return t.T("relative.days", int(d.Hours()/24))
	}
}
