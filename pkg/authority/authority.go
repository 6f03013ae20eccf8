// Package authority determines which source is authoritative for each field
// of a unified product. The commercial source owns transactional truth
// (price, SKU, stock); the manufacturer source owns content truth
// (description, specifications, media). Keeping the table in one place makes
// the merge precedence a testable contract instead of scattered conditionals.
package authority

import (
	"github.com/unisonlabs/unison/pkg/sources"
)

// Field defines the authoritative source for a unified-product field path.
type Field struct {
	Path     string       `json:"path" yaml:"path"`
	Source   sources.Type `json:"source" yaml:"source"`
	// Fallback marks fields where the other source's non-empty value is
	// used when the authoritative source's value is empty (displayName).
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Authority resolves field paths to their authoritative source.
type Authority interface {
	// Source returns the authoritative source for a field path, and whether
	// the field falls back to the other source when the value is empty.
	Source(fieldPath string) (sources.Type, bool)

	// List returns the full authority table.
	List() []Field
}

// authorities is the default table-backed implementation.
type authorities struct {
	fields []Field
	byPath map[string]Field
}

// Default returns the standard field authority table.
func Default() Authority {
	return newAuthorities(defaultFields())
}

// New creates an Authority from an explicit field table. Tests use this to
// substitute fixtures.
func New(fields []Field) Authority {
	return newAuthorities(fields)
}

func newAuthorities(fields []Field) *authorities {
	byPath := make(map[string]Field, len(fields))
	for _, f := range fields {
		byPath[f.Path] = f
	}
	return &authorities{fields: fields, byPath: byPath}
}

// Source returns the authoritative source for a field path.
// Unknown fields default to the manufacturer source, the richer of the two.
func (a *authorities) Source(fieldPath string) (sources.Type, bool) {
	if f, ok := a.byPath[fieldPath]; ok {
		return f.Source, f.Fallback
	}
	return sources.Manufacturer, false
}

// List returns the full authority table.
func (a *authorities) List() []Field {
	out := make([]Field, len(a.fields))
	copy(out, a.fields)
	return out
}

// defaultFields is the merge-precedence contract for matched products.
func defaultFields() []Field {
	return []Field{
		{Path: "price", Source: sources.Commercial},
		{Path: "sku", Source: sources.Commercial},
		{Path: "inStock", Source: sources.Commercial},
		{Path: "sourceUrls.commercial", Source: sources.Commercial},
		{Path: "description", Source: sources.Manufacturer},
		{Path: "specifications", Source: sources.Manufacturer},
		{Path: "manualUrls", Source: sources.Manufacturer},
		{Path: "galleryUrls", Source: sources.Manufacturer},
		{Path: "sourceUrls.manufacturer", Source: sources.Manufacturer},
		{Path: "displayName", Source: sources.Manufacturer, Fallback: true},
		{Path: "categoryHint", Source: sources.Manufacturer, Fallback: true},
	}
}
