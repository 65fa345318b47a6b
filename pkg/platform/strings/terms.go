// Package strings normalizes user and rulebook supplied search terms.
package strings

import "strings"

// Terms lower-cases and trims each value, dropping blanks and repeats.
// Order of first appearance is kept.
func Terms(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		term := strings.ToLower(strings.TrimSpace(v))
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// Term normalizes a single value the way Terms does.
func Term(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
