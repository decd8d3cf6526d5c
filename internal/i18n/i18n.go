package i18n

import "golang.org/x/text/language"

// Language represents a supported language.
type Language string

const (
	// English is the English language.
	English Language = "en"
	// Russian is the language of the original fitness tracker homework.
	Russian Language = "ru"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = English

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{ //nolint:gochecknoglobals // static table
	English: {
		"report.type":     "Workout type",
		"report.duration": "Duration",
		"report.distance": "Distance",
		"report.speed":    "Avg speed",
		"report.calories": "Calories burned",
		"unit.hours":      "h",
		"unit.km":         "km",
		"unit.kmh":        "km/h",
		"table.title":     "Workouts",
	},
	Russian: {
		"report.type":     "Тип тренировки",
		"report.duration": "Длительность",
		"report.distance": "Дистанция",
		"report.speed":    "Ср. скорость",
		"report.calories": "Потрачено ккал",
		"unit.hours":      "ч.",
		"unit.km":         "км",
		"unit.kmh":        "км/ч",
		"table.title":     "Тренировки",
	},
}

// matcher picks the closest supported language for a BCP 47 tag. Order follows [SupportedLanguages].
var matcher = language.NewMatcher([]language.Tag{language.English, language.Russian}) //nolint:gochecknoglobals // immutable

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{English, Russian}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// Match resolves a user supplied language tag such as "ru-RU" or "en_GB" to a supported language. Tags that cannot be
// parsed or matched fall back to [DefaultLanguage].
func Match(tag string) Language {
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages()[index]
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	if lang != DefaultLanguage {
		if translation, ok := translations[DefaultLanguage][key]; ok {
			return translation
		}
	}

	return key
}
