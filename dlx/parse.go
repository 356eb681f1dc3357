package dlx

import "strings"

// DefaultSeparators is the separator set used by the convenience
// constructors when the caller doesn't supply one, matching the original
// dancing-links library's documented default.
const DefaultSeparators = ",;:|"

// splitTokens splits s on any byte in separators, discarding empty tokens —
// the Go re-expression of the original implementation's strtok_r-based
// parsing in dlx_universe_create/dlx_subset_define's string overloads.
func splitTokens(s, separators string) []string {
	if separators == "" {
		separators = DefaultSeparators
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}
