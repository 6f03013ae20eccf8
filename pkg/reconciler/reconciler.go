// Package reconciler drives the per-brand merge of the two product sources.
// It walks the commercial list in input order, claims the best manufacturer
// candidate for each record through the matcher, merges matched pairs under
// the field authority table, and emits leftover manufacturer records exactly
// once. Raw records are never mutated: consumption is tracked in an explicit
// index set, and every input record surfaces in the output regardless of
// content quality.
package reconciler

import (
	"context"

	"github.com/unisonlabs/unison/pkg/authority"
	"github.com/unisonlabs/unison/pkg/catalogs"
	"github.com/unisonlabs/unison/pkg/errors"
	"github.com/unisonlabs/unison/pkg/extract"
	"github.com/unisonlabs/unison/pkg/logging"
	"github.com/unisonlabs/unison/pkg/match"
	"github.com/unisonlabs/unison/pkg/normalize"
	"github.com/unisonlabs/unison/pkg/sources"
)

// Reconciler merges the commercial and manufacturer record lists of a brand
// into unified products. It holds no per-run state; a single Reconciler is
// safe for concurrent use across brands.
type Reconciler struct {
	normalizer  *normalize.Normalizer
	matcher     *match.Matcher
	authorities authority.Authority
}

// New creates a Reconciler with options.
func New(opts ...Option) *Reconciler {
	options := newOptions(opts...)
	return &Reconciler{
		normalizer:  options.normalizer,
		matcher:     match.New(options.normalizer),
		authorities: options.authorities,
	}
}

// Brand reconciles one brand's source lists into unified products, in
// commercial input order followed by unclaimed manufacturer records.
// Structurally invalid records abort the whole brand before any matching
// runs; content-quality problems only degrade the affected record's tier or
// fields.
func (r *Reconciler) Brand(ctx context.Context, brandID, brandName string, commercial []catalogs.CommercialRecord, manufacturer []catalogs.ManufacturerRecord) ([]catalogs.UnifiedProduct, error) {
	if err := validate(brandID, commercial, manufacturer); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)

	candidates := make([]string, len(manufacturer))
	for i, m := range manufacturer {
		candidates[i] = m.RawName
	}

	consumed := make(map[int]struct{}, len(manufacturer))
	products := make([]catalogs.UnifiedProduct, 0, len(commercial)+len(manufacturer))

	for _, record := range commercial {
		result := r.matcher.FindBest(record.RawName, candidates, brandName, consumed)

		switch result.Method {
		case match.MethodExact, match.MethodFuzzy:
			consumed[result.CandidateIndex] = struct{}{}
			products = append(products, r.merge(brandName, record, manufacturer[result.CandidateIndex], result.Score))
		case match.MethodNone:
			products = append(products, r.commercialOnly(brandName, record))
		}
	}

	for i, record := range manufacturer {
		if _, ok := consumed[i]; ok {
			continue
		}
		products = append(products, r.manufacturerOnly(brandName, record))
	}

	// The context logger is already tagged with the brand by the caller.
	logger.Debug().
		Int("commercial", len(commercial)).
		Int("manufacturer", len(manufacturer)).
		Int("matched", len(consumed)).
		Msg("Reconciled brand")

	return products, nil
}

// validate rejects structurally invalid records up front so a brand either
// reconciles completely or not at all.
func validate(brandID string, commercial []catalogs.CommercialRecord, manufacturer []catalogs.ManufacturerRecord) error {
	for i, record := range commercial {
		if record.ExternalID == "" {
			return errors.NewStructuralError(brandID, sources.Commercial.String(), i, "missing externalId")
		}
	}
	for i, record := range manufacturer {
		if record.RawName == "" {
			return errors.NewStructuralError(brandID, sources.Manufacturer.String(), i, "missing rawName")
		}
	}
	return nil
}

// merge builds a MATCHED product. Field precedence comes from the authority
// table: transactional fields from the commercial record, content fields
// from the manufacturer record, display name preferring the manufacturer
// copy when non-empty.
func (r *Reconciler) merge(brandName string, c catalogs.CommercialRecord, m catalogs.ManufacturerRecord, score float64) catalogs.UnifiedProduct {
	displayName := r.pick("displayName", c.RawName, m.RawName)

	product := catalogs.UnifiedProduct{
		Brand:          brandName,
		DisplayName:    displayName,
		Description:    m.Description,
		Specifications: m.Specifications,
		ManualURLs:     m.ManualURLs,
		GalleryURLs:    m.GalleryURLs,
		SKU:            c.ExternalID,
		InStock:        c.InStock,
		ImageURL:       c.ImageURL,
		CategoryHint:   r.pick("categoryHint", c.CategoryHint, m.CategoryHint),
		Variant:        variantOf(displayName),
		ConfidenceTier: catalogs.TierMatched,
		MatchScore:     &score,
		SourceURLs: catalogs.SourceURLs{
			Commercial:   c.SourceURL,
			Manufacturer: m.SourceURL,
		},
	}
	product.Price = priceOf(c)
	return product
}

func (r *Reconciler) commercialOnly(brandName string, c catalogs.CommercialRecord) catalogs.UnifiedProduct {
	return catalogs.UnifiedProduct{
		Brand:          brandName,
		DisplayName:    c.RawName,
		SKU:            c.ExternalID,
		InStock:        c.InStock,
		ImageURL:       c.ImageURL,
		CategoryHint:   c.CategoryHint,
		Price:          priceOf(c),
		Variant:        variantOf(c.RawName),
		ConfidenceTier: catalogs.TierCommercialOnly,
		SourceURLs:     catalogs.SourceURLs{Commercial: c.SourceURL},
	}
}

func (r *Reconciler) manufacturerOnly(brandName string, m catalogs.ManufacturerRecord) catalogs.UnifiedProduct {
	return catalogs.UnifiedProduct{
		Brand:          brandName,
		DisplayName:    m.RawName,
		Description:    m.Description,
		Specifications: m.Specifications,
		ManualURLs:     m.ManualURLs,
		GalleryURLs:    m.GalleryURLs,
		CategoryHint:   m.CategoryHint,
		Variant:        variantOf(m.RawName),
		ConfidenceTier: catalogs.TierManufacturerOnly,
		SourceURLs:     catalogs.SourceURLs{Manufacturer: m.SourceURL},
	}
}

// pick resolves a string field between the two sources via the authority
// table.
func (r *Reconciler) pick(field, commercialValue, manufacturerValue string) string {
	src, fallback := r.authorities.Source(field)

	primary, secondary := commercialValue, manufacturerValue
	if src == sources.Manufacturer {
		primary, secondary = manufacturerValue, commercialValue
	}

	if primary == "" && fallback {
		return secondary
	}
	return primary
}

// priceOf parses the commercial price text. Malformed text degrades to a nil
// price, never an error.
func priceOf(c catalogs.CommercialRecord) *catalogs.Price {
	amount, ok := extract.Price(c.RawPriceText)
	if !ok {
		return nil
	}
	return &catalogs.Price{Amount: amount, Currency: c.CurrencyCode}
}

func variantOf(name string) *extract.VariantInfo {
	info := extract.Variant(name)
	if !info.HasVariant {
		return nil
	}
	return &info
}
