package models

import "strings"

// Language selects the instruction templates sent to the model.
type Language string

const (
	LanguageChinese Language = "zh"
	LanguageEnglish Language = "en"
)

// ParseLanguage maps "zh" to Chinese; every other value falls back to English.
func ParseLanguage(s string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageChinese:
		return LanguageChinese
	default:
		return LanguageEnglish
	}
}

// DisplayName returns the label shown in language pickers.
func (l Language) DisplayName() string {
	if l == LanguageChinese {
		return "中文"
	}
	return "English"
}
