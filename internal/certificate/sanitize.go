package certificate

import (
	"regexp"
	"strings"
)

// The base PDF fonts cannot render arbitrary symbols (emoji in particular),
// so anything outside letters, digits, whitespace and basic punctuation is
// replaced with a space before rendering.
var unsupportedRunes = regexp.MustCompile(`[^\p{L}\p{N}\s.,!?'"\-:()]`)

// Sanitize strips characters the certificate fonts cannot render.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(unsupportedRunes.ReplaceAllString(text, " "))
}
