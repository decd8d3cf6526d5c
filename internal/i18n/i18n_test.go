package i18n_test

import (
	"github.com/myrjola/ftracker/internal/i18n"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		tag  string
		want i18n.Language
	}{
		{tag: "en", want: i18n.English},
		{tag: "en-GB", want: i18n.English},
		{tag: "ru", want: i18n.Russian},
		{tag: "ru-RU", want: i18n.Russian},
		{tag: "ru_RU", want: i18n.Russian},
		{tag: "fr", want: i18n.English},
		{tag: "", want: i18n.English},
		{tag: "not a tag!", want: i18n.English},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := i18n.Match(tt.tag); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		lang i18n.Language
		key  string
		want string
	}{
		{name: "english", lang: i18n.English, key: "report.speed", want: "Avg speed"},
		{name: "russian", lang: i18n.Russian, key: "report.speed", want: "Ср. скорость"},
		{name: "unsupported language falls back", lang: i18n.Language("fi"), key: "unit.km", want: "km"},
		{name: "missing key", lang: i18n.Russian, key: "nope", want: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := i18n.Translate(tt.lang, tt.key); got != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestSupportedLanguages(t *testing.T) {
	for _, lang := range i18n.SupportedLanguages() {
		if !i18n.IsSupported(lang) {
			t.Errorf("IsSupported(%q) = false", lang)
		}
	}
	if i18n.IsSupported("fi") {
		t.Errorf("IsSupported(fi) = true")
	}
}
