package catalogs

import (
	"strings"

	"github.com/unisonlabs/unison/pkg/normalize"
)

// Slugify lowercases a name into a URL-safe slug: diacritics folded,
// non-Latin runs dropped, alphanumeric runs joined by single hyphens.
func Slugify(s string) string {
	cleaned := normalize.Clean(s)
	if cleaned == "" {
		return ""
	}

	var parts []string
	for _, run := range normalize.TokenPattern.FindAllString(cleaned, -1) {
		for _, piece := range strings.Split(run, "-") {
			if piece != "" {
				parts = append(parts, strings.ToLower(piece))
			}
		}
	}
	return strings.Join(parts, "-")
}
