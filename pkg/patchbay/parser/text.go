package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// foldText trims, NFKC-normalizes and lower-cases s for matching.
// Full-width forms such as "ＯＫ" fold to their ASCII equivalents.
func foldText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Casers carry state and are not safe for concurrent use.
	return cases.Lower(language.Und).String(norm.NFKC.String(s))
}

func hasFoldedPrefix(s, prefix string) bool {
	return strings.HasPrefix(foldText(s), prefix)
}
