package catalogs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "roland.json")

	inStock := true
	catalog := Assemble("roland", []UnifiedProduct{
		{
			Brand:          "Roland",
			DisplayName:    "FP-30X Digital Piano",
			Specifications: []SpecEntry{{Key: "Keys", Value: "88"}},
			Price:          &Price{Amount: 4200, Currency: "ILS"},
			InStock:        &inStock,
			ConfidenceTier: TierMatched,
			MatchScore:     score(1.0),
		},
	}, WithGeneratedAt(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))

	require.NoError(t, catalog.Save(path))

	loaded, err := LoadBrandCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, catalog, loaded)

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roland.json")

	catalog := Assemble("roland", []UnifiedProduct{
		{DisplayName: "FP-30X", ConfidenceTier: TierCommercialOnly},
	}, WithGeneratedAt(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))

	require.NoError(t, catalog.Save(path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, catalog.Save(path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated saves must be byte-identical")
}

func TestLoadCommercialMissingFile(t *testing.T) {
	doc, err := LoadCommercial(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
	assert.Empty(t, doc.BrandID)
}

func TestLoadManufacturerMissingFile(t *testing.T) {
	doc, err := LoadManufacturer(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
}

func TestLoadCommercialMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadCommercial(path)
	assert.Error(t, err)
}

func TestLoadCommercialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roland.json")
	body := `{
  "brandId": "roland",
  "fetchedAt": "2026-03-14T09:00:00Z",
  "products": [
    {"externalId": "H1", "rawName": "Roland FP-30X Black", "rawPriceText": "₪4,200", "inStock": true}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	doc, err := LoadCommercial(path)
	require.NoError(t, err)
	assert.Equal(t, "roland", doc.BrandID)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, "H1", doc.Products[0].ExternalID)
	require.NotNil(t, doc.Products[0].InStock)
	assert.True(t, *doc.Products[0].InStock)
}

func TestSetLookups(t *testing.T) {
	set := NewSet()
	set.Add(Assemble("roland", []UnifiedProduct{
		{DisplayName: "FP-30X", ConfidenceTier: TierCommercialOnly},
	}))
	set.Add(Assemble("yamaha", []UnifiedProduct{
		{DisplayName: "P-145", ConfidenceTier: TierManufacturerOnly},
	}))

	assert.Equal(t, []string{"roland", "yamaha"}, set.Brands())
	assert.Equal(t, 2, set.Len())

	catalog, err := set.Catalog("roland")
	require.NoError(t, err)
	assert.Equal(t, "roland", catalog.BrandID)

	product, err := set.Product("yamaha-p-145")
	require.NoError(t, err)
	assert.Equal(t, "P-145", product.DisplayName)

	_, err = set.Catalog("casio")
	assert.Error(t, err)
	_, err = set.Product("nope")
	assert.Error(t, err)
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brands.yaml")
	body := "brands:\n  - id: roland\n    name: Roland\n  - id: la-roche-posay\n    name: La Roche Posay\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "Roland", manifest.Name("roland"))
	assert.Equal(t, "La Roche Posay", manifest.Name("la-roche-posay"))
	// Unknown brands fall back to title-cased IDs.
	assert.Equal(t, "Casio", manifest.Name("casio"))
}

func TestManifestMissingFile(t *testing.T) {
	manifest, err := LoadManifest(filepath.Join(t.TempDir(), "brands.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Yamaha", manifest.Name("yamaha"))
}
