package i18n_test

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"todoq/internal/i18n"
)

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		pref string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"de", language.German},
		{"de-AT", language.German},
		{"es-MX", language.Spanish},
		{"fr", language.English},
		{"de-DE, es;q=0.8", language.German},
		{"fr-FR, es;q=0.9, de;q=0.1", language.Spanish},
		{"not a locale", language.English},
	}
	for _, tt := range tests {
		if got := i18n.MatchLocale(tt.pref); got != tt.want {
			t.Errorf("MatchLocale(%q): want %v, got %v", tt.pref, tt.want, got)
		}
	}
}

func TestTranslatorLookupAndFallback(t *testing.T) {
	tr := i18n.NewTranslator("de", nil)

	if got := tr.T("list.empty"); got != "keine Aufgaben" {
		t.Errorf("de list.empty: got %q", got)
	}
	if got := tr.T("list.counts", 2, 3); got != "2 erledigt, 3 offen" {
		t.Errorf("de list.counts: got %q", got)
	}
}

func TestMissingKeyReported(t *testing.T) {
	rep := i18n.NewMissingKeyReporter(nil)
	tr := i18n.NewTranslator("es", rep)

	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key should resolve to itself, got %q", got)
	}
	tr.T("no.such.key") // second request must not duplicate

	keys := rep.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 recorded entries (es and en fallback), got %v", keys)
	}
	if keys[0] != "en/no.such.key" || keys[1] != "es/no.such.key" {
		t.Errorf("unexpected entries: %v", keys)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	if got := i18n.NewTranslator("en", nil).FormatDate(ts); got != "Mar 9, 2026" {
		t.Errorf("en date: got %q", got)
	}
	if got := i18n.NewTranslator("de", nil).FormatDate(ts); got != "09.03.2026" {
		t.Errorf("de date: got %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	tr := i18n.NewTranslator("en", nil)

	tests := []struct {
		ts   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		if got := tr.RelativeTime(tt.ts, now); got != tt.want {
			t.Errorf("RelativeTime(%v): want %q, got %q", tt.ts, tt.want, got)
		}
	}
}
