package tiktok

import (
	"net/url"
	"regexp"
	"strings"
)

var tiktokRe = regexp.MustCompile(`https?:\/\/(www\.)?((m|vt|vm)\.tiktok\.com\/[^\s]+|tiktok\.com\/@[A-Za-z0-9_.\-]+\/video\/\d+[^\s]*)`)

// ExtractURL шукає перше посилання на TikTok у тексті повідомлення.
// Порожній текст або текст без посилання — не помилка, просто немає збігу.
func ExtractURL(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	match := tiktokRe.FindString(text)
	if match == "" {
		return "", false
	}
	match = strings.TrimRight(match, `.,;:!?)"'`)
	return match, true
}

func IsURL(str string) bool {
	u, err := url.Parse(str)
	return err == nil && u.Scheme != "" && u.Host != ""
}
