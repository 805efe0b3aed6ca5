package utils

import "strings"

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// SanitizeName makes an identifier safe to use as a single file name or key
// segment: spaces and path separators become underscores.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	return strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(name)
}
