// File: lixenwraith/unixconfig/helper.go
package unixconfig

import "strings"

// appendUnique appends the keys of s not yet seen, marking them seen.
func appendUnique(keys []string, seen map[string]bool, s *section) []string {
	if s == nil {
		return keys
	}
	for _, k := range s.keys {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// unquote strips one pair of matching surrounding quotes.
// Stored values are never unquoted in place; this is for conversions only.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// unquoteAll returns an unquoted copy of values.
func unquoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = unquote(v)
	}
	return out
}

// isValidKey checks s against the parameter key alphabet (A-Za-z0-9_-).
func isValidKey(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// isSingleLine reports whether s contains no line break.
func isSingleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}

// displaySection names a section for messages.
func displaySection(name string) string {
	if isRoot(name) {
		return RootSection
	}
	return name
}
