package matcher

import "strings"

// Match reports whether name satisfies pattern using common CLI semantics
// adopted across the project: "*" selects everything, a pattern with a
// trailing slash selects by prefix, anything else requires an exact match.
func Match(pattern, name string) bool {
	switch {
	case pattern == "*":
		return true
	case pattern == "":
		return false
	case strings.HasSuffix(pattern, "/"):
		return strings.HasPrefix(name, pattern)
	}
	return name == pattern
}

// Any reports whether name satisfies at least one of the patterns.
func Any(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}
