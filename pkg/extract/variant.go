package extract

import (
	"regexp"
	"strings"

	"github.com/unisonlabs/unison/pkg/normalize"
)

// VariantType classifies how a product name marks a variant.
type VariantType string

// Variant type constants, in detection priority order.
const (
	VariantVersion    VariantType = "version"
	VariantGeneration VariantType = "generation"
	VariantColor      VariantType = "color"
)

// VariantInfo describes variant metadata detected in a product name.
// Type reflects the highest-priority detection (version, then generation,
// then color); Color is filled independently whenever a color word matches,
// regardless of Type.
type VariantInfo struct {
	HasVariant bool        `json:"hasVariant"`
	Type       VariantType `json:"type,omitempty"`
	Color      string      `json:"color,omitempty"`
}

var (
	versionMarker    = regexp.MustCompile(`(?i)\bv\d+\b|\bmk\.?\s*(?:\d+|[ivx]+)\b|\bmark\s+(?:\d+|[ivx]+)\b`)
	generationMarker = regexp.MustCompile(`(?i)\bgen\s*\.?\s*\d+\b|\b\d+(?:st|nd|rd|th)\s+gen(?:eration)?\b`)
)

// colorWords is the fixed color vocabulary. Lowercase; matched per token.
var colorWords = map[string]struct{}{
	"black": {}, "white": {}, "red": {}, "blue": {}, "green": {},
	"yellow": {}, "orange": {}, "purple": {}, "pink": {}, "brown": {},
	"grey": {}, "gray": {}, "silver": {}, "gold": {}, "ivory": {},
	"charcoal": {}, "walnut": {}, "rosewood": {}, "mahogany": {},
	"ebony": {}, "natural": {},
}

// Variant detects version markers ("v2", "mk III"), generation ordinals
// ("gen 3", "2nd gen"), and color words in a product name. Detections
// coexist: a name may carry both a generation marker and a color.
func Variant(name string) VariantInfo {
	cleaned := normalize.Clean(name)

	var info VariantInfo

	for _, tok := range normalize.TokenPattern.FindAllString(cleaned, -1) {
		if _, ok := colorWords[strings.ToLower(tok)]; ok {
			info.Color = strings.ToLower(tok)
			info.HasVariant = true
			break
		}
	}

	switch {
	case versionMarker.MatchString(cleaned):
		info.Type = VariantVersion
		info.HasVariant = true
	case generationMarker.MatchString(cleaned):
		info.Type = VariantGeneration
		info.HasVariant = true
	case info.Color != "":
		info.Type = VariantColor
	}

	return info
}
