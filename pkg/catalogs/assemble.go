package catalogs

import (
	"fmt"
	"sort"
	"time"
)

// AssembleOption configures catalog assembly.
type AssembleOption func(*assembleOptions)

type assembleOptions struct {
	generatedAt time.Time
}

// WithGeneratedAt sets the catalog's generation timestamp. Callers pass the
// freshness of the source snapshots rather than the wall clock so unchanged
// input yields byte-identical output.
func WithGeneratedAt(t time.Time) AssembleOption {
	return func(o *assembleOptions) {
		o.generatedAt = t
	}
}

// tierRank orders tiers for serialization: matched products first, then
// commercial-only, then manufacturer-only.
var tierRank = map[ConfidenceTier]int{
	TierMatched:          0,
	TierCommercialOnly:   1,
	TierManufacturerOnly: 2,
}

// Assemble wraps reconciled products into a BrandCatalog: products ordered
// by tier (matched by descending match score, stable; the other tiers keep
// their relative input order), deterministic slug IDs with first-seen
// collision suffixes, and statistics that sum to len(products). The ordering
// and ID assignment are contracts: identical input ordering must reproduce
// identical catalogs for diffable output.
func Assemble(brandID string, products []UnifiedProduct, opts ...AssembleOption) *BrandCatalog {
	options := &assembleOptions{}
	for _, opt := range opts {
		opt(options)
	}

	ordered := make([]UnifiedProduct, len(products))
	copy(ordered, products)

	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := tierRank[ordered[i].ConfidenceTier], tierRank[ordered[j].ConfidenceTier]
		if ri != rj {
			return ri < rj
		}
		if ordered[i].ConfidenceTier == TierMatched {
			return matchScore(ordered[i]) > matchScore(ordered[j])
		}
		return false
	})

	stats := Statistics{}
	seen := make(map[string]int, len(ordered))
	for i := range ordered {
		switch ordered[i].ConfidenceTier {
		case TierMatched:
			stats.Matched++
		case TierCommercialOnly:
			stats.CommercialOnly++
		case TierManufacturerOnly:
			stats.ManufacturerOnly++
		}

		ordered[i].ID = assignID(brandID, ordered[i].DisplayName, seen)
	}

	return &BrandCatalog{
		BrandID:     brandID,
		GeneratedAt: options.generatedAt,
		Statistics:  stats,
		Products:    ordered,
	}
}

// assignID derives a stable product ID from the brand and display name,
// disambiguating collisions with an incrementing suffix in first-seen order.
func assignID(brandID, displayName string, seen map[string]int) string {
	base := Slugify(brandID)
	if slug := Slugify(displayName); slug != "" {
		base = base + "-" + slug
	} else {
		base = base + "-product"
	}

	// A suffixed ID can collide with another product's natural slug (and the
	// other way around), so every issued ID is reserved in seen, not just
	// the per-base counter.
	for n := seen[base] + 1; ; n++ {
		id := base
		if n > 1 {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		if seen[id] == 0 {
			seen[base] = n
			if id != base {
				seen[id] = 1
			}
			return id
		}
	}
}

func matchScore(p UnifiedProduct) float64 {
	if p.MatchScore == nil {
		return 0
	}
	return *p.MatchScore
}
