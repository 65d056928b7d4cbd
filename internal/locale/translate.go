package locale

// Pick returns the text matching the request language, defaulting to English.
func Pick(language, english, indonesian string) string {
	if NormalizeLanguage(language) == LanguageIndonesian {
		if indonesian != "" {
			return indonesian
		}
		return english
	}
	if english != "" {
		return english
	}
	return indonesian
}
