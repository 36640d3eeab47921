package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TitleCase normalizes a display name: trimmed, single-spaced, each word
// capitalized ("  sarah  JOHNSON " -> "Sarah Johnson").
func TitleCase(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return titleCaser.String(strings.ToLower(strings.Join(fields, " ")))
}
