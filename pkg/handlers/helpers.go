package handlers

import "strings"

// findIndex finds the index of the first matching header candidate.
func findIndex(slice []string, candidates ...string) int {
	for _, candidate := range candidates {
		for i, item := range slice {
			if strings.EqualFold(strings.TrimSpace(item), candidate) {
				return i
			}
		}
	}
	return -1
}

// cellAt returns the trimmed cell value, or "" when the column is absent
// or the row is short.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
