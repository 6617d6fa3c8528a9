package locale

import "strings"

const (
	LanguageMongolian = "mn"
	LanguageEnglish   = "en"
	LanguageChinese   = "zh"
)

// Supported lists the languages admin writes may target. Reads tolerate any
// language string and simply miss the default tables.
var Supported = []string{LanguageMongolian, LanguageEnglish, LanguageChinese}

type Preference struct {
	Language string
	Locale   string
	HTMLLang string
}

func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "mn") {
		return LanguageMongolian
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	if strings.HasPrefix(trimmed, "zh") || trimmed == "cn" {
		return LanguageChinese
	}
	return ""
}

// IsSupported reports whether the language is one the site serves.
func IsSupported(language string) bool {
	return NormalizeLanguage(language) != ""
}

func LanguageFromAcceptLanguage(header string) string {
	trimmed := strings.ToLower(strings.TrimSpace(header))
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "mn") {
		return LanguageMongolian
	}
	if strings.Contains(trimmed, "zh") {
		return LanguageChinese
	}
	if strings.Contains(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func PreferenceForLanguage(language string) Preference {
	switch NormalizeLanguage(language) {
	case LanguageEnglish:
		return Preference{Language: LanguageEnglish, Locale: "en_US", HTMLLang: "en-US"}
	case LanguageChinese:
		return Preference{Language: LanguageChinese, Locale: "zh_CN", HTMLLang: "zh-CN"}
	}
	return Preference{Language: LanguageMongolian, Locale: "mn_MN", HTMLLang: "mn-MN"}
}
