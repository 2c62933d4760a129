package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// LastSegment returns the part of s after the last occurrence of sep,
// or s itself when sep does not occur.
func LastSegment(s, sep string) string {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s
	}

	return s[idx+len(sep):]
}
