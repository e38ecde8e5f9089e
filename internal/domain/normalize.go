package domain

import (
	"strings"
)

// TrimOrNil trims whitespace and returns nil for nil or blank input.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// FoldKey returns the case-insensitive comparison key used by the
// duplicate guard.
func FoldKey(s string) string {
	return strings.ToLower(s)
}

// SameTitleArea reports whether two (title, area) pairs collide under
// case-insensitive comparison.
func SameTitleArea(titleA, areaA, titleB, areaB string) bool {
	return FoldKey(titleA) == FoldKey(titleB) && FoldKey(areaA) == FoldKey(areaB)
}
