// Package extract pulls structured values out of free-form listing text:
// monetary amounts from currency strings and variant metadata (version,
// generation, color) from product names.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// numberRun matches a digit run with optional comma thousands separators and
// an optional decimal part, e.g. "2,400", "4200", "3.5", "1,234.56".
var numberRun = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

// parenthesized matches bracketed asides such as "(was 3,000)". Struck-through
// original prices and promotional references live there, never the current
// price, so they are excluded before the last-number rule applies.
var parenthesized = regexp.MustCompile(`\([^)]*\)`)

// Price extracts the numeric monetary value from free-form currency text.
// It tolerates symbol prefixes, currency-code suffixes, thousands separators,
// and trailing unit markers. Among the candidate digit runs the last one
// outside parentheses wins. The second return value reports whether a value
// was found; malformed text never produces an error.
func Price(text string) (float64, bool) {
	runs := numberRun.FindAllString(parenthesized.ReplaceAllString(text, " "), -1)
	if len(runs) == 0 {
		// Nothing outside parentheses; scan the whole string as a fallback.
		runs = numberRun.FindAllString(text, -1)
	}
	if len(runs) == 0 {
		return 0, false
	}

	last := strings.ReplaceAll(runs[len(runs)-1], ",", "")
	value, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
