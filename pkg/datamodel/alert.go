package datamodel

import "strings"

// RequiresDowntimeClassification decides, at alert creation time, whether an
// alert must carry a downtime classification before it can be acknowledged.
// Critical alerts about a stoppage require one.
//
// The text matching exists only for legacy producers that do not set the flag
// themselves; it runs exactly once, here, when the alert record is built.
// Nothing in the lifecycle reads the title or message afterwards.
func RequiresDowntimeClassification(alertType AlertType, title string, message string) bool {
	if alertType != AlertCritical {
		return false
	}
	title = strings.ToLower(title)
	message = strings.ToLower(message)
	return strings.Contains(title, "downtime") ||
		strings.Contains(title, "stopped") ||
		strings.Contains(message, "stopped")
}
