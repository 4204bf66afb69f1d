package utils

import "strings"

type Lang string

const (
	RU Lang = "ru"
	EN Lang = "en"
)

// Language is one UI string in every supported language. RU is the
// fallback for missing translations.
type Language struct {
	RU string
	EN string
}

func (l Language) By(lang Lang) string {
	if lang == EN && l.EN != "" {
		return l.EN
	}
	return l.RU
}

// ParseLang accepts bare codes and locale tags such as "en-US" or "ru_RU".
func ParseLang(lang string) (Lang, bool) {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(lang)), "-")
	base, _, _ = strings.Cut(base, "_")
	switch Lang(base) {
	case RU:
		return RU, true
	case EN:
		return EN, true
	default:
		return "", false
	}
}
