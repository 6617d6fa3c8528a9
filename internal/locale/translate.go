package locale

// Pick returns the text matching the request language, defaulting to Mongolian.
func Pick(language, english, mongolian string) string {
	if NormalizeLanguage(language) == LanguageEnglish {
		if english != "" {
			return english
		}
		return mongolian
	}
	if mongolian != "" {
		return mongolian
	}
	return english
}
