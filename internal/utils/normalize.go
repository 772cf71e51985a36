package utils

import "strings"

// Fold is the case normalization shared by every text match: plain
// lowercasing, no accent stripping or trimming.
func Fold(s string) string {
	return strings.ToLower(s)
}

// ContainsFold reports whether s contains substr after both are folded.
// An empty substr is contained in every string.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
