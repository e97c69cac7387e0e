package catalog

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// Политики bluemonday безопасны для конкурентного использования после создания.
	textPolicy = bluemonday.StrictPolicy()
	htmlPolicy = bluemonday.UGCPolicy()

	whitespacePattern = regexp.MustCompile(`[\r\n\t ]+`)
	keyPattern        = regexp.MustCompile(`[^a-z0-9_\-]`)
)

// SanitizeText очищает однострочное текстовое поле: убирает HTML-теги и невалидный UTF-8,
// схлопывает пробельные символы и обрезает края. Результат — простой текст без сущностей.
func SanitizeText(s string) string {
	s = html.UnescapeString(textPolicy.Sanitize(validUTF8(s)))
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SanitizeKey приводит строку к ключу: нижний регистр, только a-z, 0-9, '_' и '-'.
func SanitizeKey(s string) string {
	return keyPattern.ReplaceAllString(strings.ToLower(s), "")
}

// SanitizeHTML оставляет безопасную разметку описаний (UGC-политика):
// script, style и iframe вырезаются вместе с содержимым, обработчики on* и
// ссылки с небезопасными схемами удаляются.
func SanitizeHTML(s string) string {
	return strings.TrimSpace(htmlPolicy.Sanitize(validUTF8(s)))
}

func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}
