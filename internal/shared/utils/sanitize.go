package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup from free-text user input. Titles,
// descriptions and capture notes are stored as plain text.
func SanitizeText(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}
