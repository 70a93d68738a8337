package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizePlace converts a raw place name into its canonical cache-key form:
// whitespace-trimmed and title-cased per word. Idempotent.
func NormalizePlace(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}
