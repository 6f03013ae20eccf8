package reconciler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unisonlabs/unison/pkg/catalogs"
	"github.com/unisonlabs/unison/pkg/errors"
	"github.com/unisonlabs/unison/pkg/reconciler"
)

func TestBrandMatchedMerge(t *testing.T) {
	r := reconciler.New()

	commercial := []catalogs.CommercialRecord{
		{
			ExternalID:   "H1",
			RawName:      "Roland FP-30X Black",
			RawPriceText: "₪4,200",
			CurrencyCode: "ILS",
			SourceURL:    "https://shop.example/fp30x",
		},
	}
	manufacturer := []catalogs.ManufacturerRecord{
		{
			RawName:        "FP-30X Digital Piano",
			Specifications: []catalogs.SpecEntry{{Key: "Keys", Value: "88"}},
			SourceURL:      "https://roland.example/fp-30x",
		},
	}

	products, err := r.Brand(context.Background(), "roland", "Roland", commercial, manufacturer)
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, catalogs.TierMatched, p.ConfidenceTier)
	require.NotNil(t, p.MatchScore)
	assert.Equal(t, 1.0, *p.MatchScore)
	// Manufacturer copy wins the display name.
	assert.Equal(t, "FP-30X Digital Piano", p.DisplayName)
	require.NotNil(t, p.Price)
	assert.InDelta(t, 4200.0, p.Price.Amount, 1e-9)
	assert.Equal(t, "ILS", p.Price.Currency)
	assert.Equal(t, "H1", p.SKU)
	assert.Equal(t, []catalogs.SpecEntry{{Key: "Keys", Value: "88"}}, p.Specifications)
	assert.Equal(t, "https://shop.example/fp30x", p.SourceURLs.Commercial)
	assert.Equal(t, "https://roland.example/fp-30x", p.SourceURLs.Manufacturer)
}

func TestBrandDisplayNameFallsBackToCommercial(t *testing.T) {
	r := reconciler.New()

	// Without a manufacturer match the commercial copy is the display name.
	commercial := []catalogs.CommercialRecord{
		{ExternalID: "H2", RawName: "Roland GO:KEYS 3"},
	}

	products, err := r.Brand(context.Background(), "roland", "Roland", commercial, nil)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Roland GO:KEYS 3", products[0].DisplayName)
	assert.Equal(t, catalogs.TierCommercialOnly, products[0].ConfidenceTier)
}

func TestBrandOrphanManufacturer(t *testing.T) {
	r := reconciler.New()

	products, err := r.Brand(context.Background(), "roland", "Roland",
		nil,
		[]catalogs.ManufacturerRecord{{RawName: "X1"}},
	)
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, catalogs.TierManufacturerOnly, p.ConfidenceTier)
	assert.Nil(t, p.Price)
	assert.Nil(t, p.MatchScore)
	assert.Equal(t, "X1", p.DisplayName)
}

func TestBrandNoRecordLoss(t *testing.T) {
	r := reconciler.New()

	commercial := []catalogs.CommercialRecord{
		{ExternalID: "C1", RawName: "Roland FP-30X Black"},
		{ExternalID: "C2", RawName: "Roland FP-10"},
		{ExternalID: "C3", RawName: "mystery listing without code"},
	}
	manufacturer := []catalogs.ManufacturerRecord{
		{RawName: "FP-30X Digital Piano"},
		{RawName: "FP-60X Digital Piano"},
		{RawName: "JUNO-DS88 Synthesizer"},
	}

	products, err := r.Brand(context.Background(), "roland", "Roland", commercial, manufacturer)
	require.NoError(t, err)

	matched := 0
	for _, p := range products {
		if p.ConfidenceTier == catalogs.TierMatched {
			matched++
		}
	}

	assert.Equal(t, len(commercial)+len(manufacturer)-matched, len(products))
	assert.LessOrEqual(t, matched, min(len(commercial), len(manufacturer)))
}

func TestBrandManufacturerConsumedOnce(t *testing.T) {
	r := reconciler.New()

	// Two commercial listings for the same model, one manufacturer entry.
	// The first listing claims the candidate; the second degrades to
	// commercial-only instead of double-counting it.
	commercial := []catalogs.CommercialRecord{
		{ExternalID: "C1", RawName: "Roland FP-30X Black"},
		{ExternalID: "C2", RawName: "Roland FP-30X White"},
	}
	manufacturer := []catalogs.ManufacturerRecord{
		{RawName: "FP-30X Digital Piano"},
	}

	products, err := r.Brand(context.Background(), "roland", "Roland", commercial, manufacturer)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, catalogs.TierMatched, products[0].ConfidenceTier)
	assert.Equal(t, "C1", products[0].SKU)
	assert.Equal(t, catalogs.TierCommercialOnly, products[1].ConfidenceTier)
	assert.Equal(t, "C2", products[1].SKU)
}

func TestBrandUnmatchableNameDegrades(t *testing.T) {
	r := reconciler.New()

	commercial := []catalogs.CommercialRecord{
		{ExternalID: "C1", RawName: ""},
		{ExternalID: "C2", RawName: "!!!"},
	}

	products, err := r.Brand(context.Background(), "roland", "Roland", commercial, nil)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, catalogs.TierCommercialOnly, p.ConfidenceTier)
	}
}

func TestBrandMalformedPriceDegrades(t *testing.T) {
	r := reconciler.New()

	commercial := []catalogs.CommercialRecord{
		{ExternalID: "C1", RawName: "Roland FP-30X", RawPriceText: "call for price"},
	}

	products, err := r.Brand(context.Background(), "roland", "Roland", commercial, nil)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].Price)
}

func TestBrandStructuralErrors(t *testing.T) {
	r := reconciler.New()

	t.Run("commercial missing externalId", func(t *testing.T) {
		_, err := r.Brand(context.Background(), "roland", "Roland",
			[]catalogs.CommercialRecord{{RawName: "FP-30X"}}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsStructural(err))
	})

	t.Run("manufacturer missing rawName", func(t *testing.T) {
		_, err := r.Brand(context.Background(), "roland", "Roland",
			nil, []catalogs.ManufacturerRecord{{Description: "orphan"}})
		require.Error(t, err)
		assert.True(t, errors.IsStructural(err))
	})
}

func TestBrandFuzzyMatch(t *testing.T) {
	r := reconciler.New()

	commercial := []catalogs.CommercialRecord{
		{ExternalID: "C1", RawName: "waterfall axe box cat dog elk fox gnu hen owl"},
	}
	manufacturer := []catalogs.ManufacturerRecord{
		{RawName: "mountains axe box cat dog elk fox gnu yak emu"},
	}

	products, err := r.Brand(context.Background(), "acme", "Acme", commercial, manufacturer)
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, catalogs.TierMatched, p.ConfidenceTier)
	require.NotNil(t, p.MatchScore)
	assert.InDelta(t, 0.70, *p.MatchScore, 1e-9)
}

func TestBrandDeterministic(t *testing.T) {
	r := reconciler.New()

	commercial := []catalogs.CommercialRecord{
		{ExternalID: "C1", RawName: "Roland FP-30X Black", RawPriceText: "₪4,200"},
		{ExternalID: "C2", RawName: "Roland FP-10"},
	}
	manufacturer := []catalogs.ManufacturerRecord{
		{RawName: "FP-10 Digital Piano"},
		{RawName: "FP-30X Digital Piano"},
	}

	first, err := r.Brand(context.Background(), "roland", "Roland", commercial, manufacturer)
	require.NoError(t, err)
	second, err := r.Brand(context.Background(), "roland", "Roland", commercial, manufacturer)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
