package catalogs

import (
	"os"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/unisonlabs/unison/pkg/errors"
)

// BrandEntry is one brand in the manifest.
type BrandEntry struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Manifest maps brand IDs to their display names. The display name doubles
// as the brand word stripped during normalization, so getting it right
// matters for match quality.
type Manifest struct {
	Brands []BrandEntry `yaml:"brands" json:"brands"`
}

var titleCaser = cases.Title(language.English)

// LoadManifest reads a brands.yaml manifest. A missing file yields an empty
// manifest; brand names then fall back to title-cased IDs.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return manifest, nil
}

// Name returns the display name for a brand ID, falling back to the
// title-cased ID when the manifest has no entry.
func (m *Manifest) Name(brandID string) string {
	for _, entry := range m.Brands {
		if entry.ID == brandID && entry.Name != "" {
			return entry.Name
		}
	}
	return titleCaser.String(brandID)
}
