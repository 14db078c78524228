package errors

import (
	"strings"
	"unicode"
)

// ValidateHostname validates a canonical hostname for safety and correctness.
// Hostnames are used directly as icon file basenames, so names that could be
// used for path traversal must be rejected before touching the filesystem.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., /, \)
//   - Maximum length of 253 characters (DNS limit)
func ValidateHostname(host string) error {
	if host == "" {
		return New(ErrCodeInvalidHostname, "hostname cannot be empty")
	}

	if len(host) > 253 {
		return New(ErrCodeInvalidHostname, "hostname too long (max 253 characters)")
	}

	for _, r := range host {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidHostname, "hostname contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(host, pattern) {
			return New(ErrCodeInvalidHostname, "hostname contains invalid characters: %q", pattern)
		}
	}

	return nil
}
