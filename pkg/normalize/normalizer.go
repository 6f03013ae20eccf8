// Package normalize canonicalizes raw product names into comparable keys.
// Input names are noisy: mixed-script text, diacritics, embedded model codes,
// brand-name repetition, and decorative suffixes. The normalizer reduces a
// name to the single most model-code-like token so two independently written
// listings for the same physical product produce the same key.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TokenPattern matches the alphanumeric+hyphen runs the engine treats as
// tokens. Shared with the extract package.
var TokenPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9-]*`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// stripMarks decomposes text and removes combining diacritical marks, so
// accented Latin letters compare equal to their plain forms.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// typographic punctuation variants unified to ASCII before tokenizing.
var punctReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'",
	"“", `"`, "”", `"`, "„", `"`,
	"–", "-", "—", "-", "−", "-",
	" ", " ",
)

// Normalizer derives canonical matching keys from raw product names.
// The noise-word table is fixed at construction so every call site in a run
// normalizes identically; tests substitute fixture tables via WithNoiseWords.
type Normalizer struct {
	noiseWords map[string]struct{}
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithNoiseWords replaces the compiled-in noise-word table.
func WithNoiseWords(words []string) Option {
	return func(n *Normalizer) {
		n.noiseWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			n.noiseWords[strings.ToUpper(w)] = struct{}{}
		}
	}
}

// New creates a Normalizer with the default noise-word table.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	WithNoiseWords(defaultNoiseWords)(n)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Key canonicalizes a raw product name into its matching key: an uppercase,
// punctuation-free token, or the empty string when no usable token survives.
// Callers must treat an empty key as unmatchable. Total over any input.
func (n *Normalizer) Key(rawName, brandName string) string {
	tokens := n.Tokens(rawName, brandName)
	if len(tokens) == 0 {
		return ""
	}

	// Digit-bearing tokens are almost always model codes; the first one in
	// reading order wins over longer or shorter ones.
	for _, tok := range tokens {
		if containsDigit(tok) {
			return tok
		}
	}

	// No model code. Fall back to the longest remaining token as a proxy
	// for a proper-noun model name; ties keep the earlier token.
	best := ""
	for _, tok := range tokens {
		if len(tok) >= 3 && len(tok) > len(best) {
			best = tok
		}
	}
	return best
}

// Tokens returns the cleaned, uppercased token list for a raw name with the
// brand and noise words removed. The fuzzy matcher scores over this list.
func (n *Normalizer) Tokens(rawName, brandName string) []string {
	cleaned := Clean(rawName)
	if cleaned == "" {
		return nil
	}

	brand := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToUpper(Clean(brandName))) {
		brand[w] = struct{}{}
	}

	var tokens []string
	for _, raw := range TokenPattern.FindAllString(cleaned, -1) {
		tok := strings.ToUpper(stripNonAlnum(raw))
		if tok == "" {
			continue
		}
		if _, isBrand := brand[tok]; isBrand {
			continue
		}
		if _, isNoise := n.noiseWords[tok]; isNoise {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Clean strips non-Latin scripts and diacritics from a string, unifies
// typographic punctuation, and collapses whitespace. Runs of removed
// characters leave a single space so adjacent tokens do not fuse.
func Clean(s string) string {
	if s == "" {
		return ""
	}

	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = punctReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII:
			b.WriteRune(r)
		default:
			// Non-Latin scripts carry no matchable signal here.
			b.WriteByte(' ')
		}
	}

	return CollapseWhitespace(b.String())
}

// CollapseWhitespace reduces whitespace runs to single spaces and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
