package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContainsFold reports whether substr is within s under Unicode case folding.
// An empty substr matches everything, as strings.Contains does.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}

// DisplayLabel title-cases a free-text label for table output, e.g. "sci-fi" -> "Sci-Fi".
func DisplayLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return cases.Title(language.Und, cases.NoLower).String(value)
}
