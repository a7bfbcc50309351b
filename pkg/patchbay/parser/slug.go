package parser

import (
	"regexp"
	"strings"
)

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9]+`)
	slugUnderscore = regexp.MustCompile(`_+`)
)

// SlugID joins the non-blank parts with "_" and reduces the result to
// lower-case ASCII letters, digits and single underscores. It never returns
// an empty string.
func SlugID(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	s := strings.ToLower(strings.Join(kept, "_"))
	s = slugInvalid.ReplaceAllString(s, "_")
	s = strings.Trim(slugUnderscore.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "item"
	}
	return s
}
