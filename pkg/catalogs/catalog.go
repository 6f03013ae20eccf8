package catalogs

import (
	"time"

	"github.com/unisonlabs/unison/pkg/errors"
)

// Statistics counts unified products per confidence tier.
type Statistics struct {
	Matched          int `json:"matched"`
	CommercialOnly   int `json:"commercialOnly"`
	ManufacturerOnly int `json:"manufacturerOnly"`
}

// Total returns the sum over all tiers.
func (s Statistics) Total() int {
	return s.Matched + s.CommercialOnly + s.ManufacturerOnly
}

// BrandCatalog is the serialized per-brand container of unified products.
// It is fully regenerated on each run, never patched in place.
type BrandCatalog struct {
	BrandID     string           `json:"brandId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Statistics  Statistics       `json:"statistics"`
	Products    []UnifiedProduct `json:"products"`
}

// Product returns the product with the given ID.
func (c *BrandCatalog) Product(id string) (*UnifiedProduct, error) {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i], nil
		}
	}
	return nil, errors.NewNotFoundError("product", id)
}

// Set is a read-side collection of brand catalogs for downstream consumers.
type Set struct {
	byBrand map[string]*BrandCatalog
	order   []string
}

// NewSet creates an empty catalog set.
func NewSet() *Set {
	return &Set{byBrand: make(map[string]*BrandCatalog)}
}

// Add inserts or replaces a brand's catalog.
func (s *Set) Add(catalog *BrandCatalog) {
	if catalog == nil {
		return
	}
	if _, exists := s.byBrand[catalog.BrandID]; !exists {
		s.order = append(s.order, catalog.BrandID)
	}
	s.byBrand[catalog.BrandID] = catalog
}

// Catalog returns the catalog for a brand.
func (s *Set) Catalog(brandID string) (*BrandCatalog, error) {
	if c, ok := s.byBrand[brandID]; ok {
		return c, nil
	}
	return nil, errors.NewNotFoundError("brand catalog", brandID)
}

// Product looks a product up by ID across all brands.
func (s *Set) Product(id string) (*UnifiedProduct, error) {
	for _, brandID := range s.order {
		if p, err := s.byBrand[brandID].Product(id); err == nil {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("product", id)
}

// Brands returns the brand IDs in insertion order.
func (s *Set) Brands() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of catalogs in the set.
func (s *Set) Len() int {
	return len(s.byBrand)
}
