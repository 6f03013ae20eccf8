package catalogs

import (
	"github.com/unisonlabs/unison/pkg/extract"
)

// ConfidenceTier classifies a unified product by how it was produced.
type ConfidenceTier string

// Confidence tier constants.
const (
	// TierMatched means the commercial and manufacturer records were merged.
	TierMatched ConfidenceTier = "MATCHED"
	// TierCommercialOnly means no manufacturer record matched.
	TierCommercialOnly ConfidenceTier = "COMMERCIAL_ONLY"
	// TierManufacturerOnly means the manufacturer record went unclaimed.
	TierManufacturerOnly ConfidenceTier = "MANUFACTURER_ONLY"
)

// IsValid checks if the tier is one of the three known tiers.
func (t ConfidenceTier) IsValid() bool {
	switch t {
	case TierMatched, TierCommercialOnly, TierManufacturerOnly:
		return true
	default:
		return false
	}
}

// String returns the string representation of the tier.
func (t ConfidenceTier) String() string {
	return string(t)
}

// Price is a monetary value with its currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// SourceURLs carries the per-source origin links of a unified product.
// Either may be absent.
type SourceURLs struct {
	Commercial   string `json:"commercial,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

// UnifiedProduct is the engine's output entity: one physical product with
// fields merged from whichever sources contributed it. Exactly one unified
// product exists per commercial record and per unmatched manufacturer
// record; no commercial record is ever dropped and no manufacturer record is
// counted twice.
type UnifiedProduct struct {
	ID             string               `json:"id"`
	Brand          string               `json:"brand"`
	DisplayName    string               `json:"displayName"`
	Description    string               `json:"description,omitempty"`
	Specifications []SpecEntry          `json:"specifications,omitempty"`
	ManualURLs     []string             `json:"manualUrls,omitempty"`
	GalleryURLs    []string             `json:"galleryUrls,omitempty"`
	Price          *Price               `json:"price,omitempty"`
	SKU            string               `json:"sku,omitempty"`
	InStock        *bool                `json:"inStock,omitempty"`
	ImageURL       string               `json:"imageUrl,omitempty"`
	CategoryHint   string               `json:"categoryHint,omitempty"`
	Variant        *extract.VariantInfo `json:"variant,omitempty"`
	ConfidenceTier ConfidenceTier       `json:"confidenceTier"`
	// MatchScore is present only when ConfidenceTier is MATCHED.
	MatchScore *float64   `json:"matchScore,omitempty"`
	SourceURLs SourceURLs `json:"sourceUrls"`
}
