package internal

import "strings"

// SanitizeString removes newlines from a string before it is logged or
// returned in an error payload, preventing log forging from user input.
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
