// Package catalogs defines the raw source records the engine consumes, the
// unified products it produces, and the per-brand catalog container with its
// persistence and read-side lookups.
package catalogs

import (
	"time"
)

// SpecEntry is one ordered key/value pair of a specification table.
// Specifications are a slice, not a map, because the manufacturer's ordering
// is part of the content and must survive serialization.
type SpecEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CommercialRecord is one listing from the commercial source.
// Records are created once per scrape snapshot and never mutated by the
// engine.
type CommercialRecord struct {
	ExternalID   string `json:"externalId"`
	RawName      string `json:"rawName"`
	RawPriceText string `json:"rawPriceText,omitempty"`
	CurrencyCode string `json:"currencyCode,omitempty"`
	CategoryHint string `json:"categoryHint,omitempty"`
	SourceURL    string `json:"sourceUrl,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	// InStock is tri-state: nil means unknown.
	InStock *bool `json:"inStock,omitempty"`
}

// ManufacturerRecord is one product entry from the manufacturer source.
// Immutable, same lifecycle as CommercialRecord.
type ManufacturerRecord struct {
	RawName        string      `json:"rawName"`
	Description    string      `json:"description,omitempty"`
	Specifications []SpecEntry `json:"specifications,omitempty"`
	ManualURLs     []string    `json:"manualUrls,omitempty"`
	GalleryURLs    []string    `json:"galleryUrls,omitempty"`
	SourceURL      string      `json:"sourceUrl,omitempty"`
	CategoryHint   string      `json:"categoryHint,omitempty"`
}

// CommercialDocument is the per-brand input document from the commercial
// scraping layer.
type CommercialDocument struct {
	BrandID   string             `json:"brandId"`
	FetchedAt time.Time          `json:"fetchedAt,omitempty"`
	Products  []CommercialRecord `json:"products"`
}

// ManufacturerDocument is the per-brand input document from the manufacturer
// scraping layer.
type ManufacturerDocument struct {
	BrandID   string               `json:"brandId"`
	FetchedAt time.Time            `json:"fetchedAt,omitempty"`
	Products  []ManufacturerRecord `json:"products"`
}
