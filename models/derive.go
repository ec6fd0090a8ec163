package models

import (
	"math"
	"strings"
)

const (
	wordsPerMinute   = 200
	maxExcerptLength = 160
)

// GenerateSlug lowercases the title, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims hyphens from both ends.
// "Top Investment Opportunities!" becomes "top-investment-opportunities".
func GenerateSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// CalculateReadingTime estimates minutes to read content at 200 words a minute
func CalculateReadingTime(content string) int {
	words := len(strings.Fields(content))
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// DeriveExcerpt builds a summary from the first paragraph of markdown-like content.
// Heading, emphasis and code markers are dropped; paragraphs over 160 characters
// are cut and suffixed with "...".
func DeriveExcerpt(content string) string {
	plain := strings.NewReplacer("#", "", "*", "", "`", "").Replace(content)
	plain = strings.TrimSpace(strings.ReplaceAll(plain, "\r\n", "\n"))

	first, _, _ := strings.Cut(plain, "\n\n")
	runes := []rune(first)
	if len(runes) > maxExcerptLength {
		return string(runes[:maxExcerptLength]) + "..."
	}
	return first
}
