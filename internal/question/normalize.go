package question

import "strings"

// NormalizeKey trims whitespace around an option key or question id.
func NormalizeKey(value string) string {
	return strings.TrimSpace(value)
}

// normalizeContext drops trailing newlines and blanks whitespace-only blocks.
// Inner layout is preformatted and kept as is.
func normalizeContext(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return strings.TrimRight(value, "\r\n")
}
